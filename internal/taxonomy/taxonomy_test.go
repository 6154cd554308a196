package taxonomy

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	table := Default()

	tests := []struct {
		name        string
		category    string
		subcategory string
		wantErr     bool
	}{
		{
			name:        "valid expense pair",
			category:    "GASTO",
			subcategory: "COMIDA",
			wantErr:     false,
		},
		{
			name:        "valid with different case",
			category:    "gasto",
			subcategory: "comida",
			wantErr:     false,
		},
		{
			name:        "valid with extra spaces",
			category:    "  GASTO  ",
			subcategory: "  TRANSPORTE  ",
			wantErr:     false,
		},
		{
			name:        "income pair",
			category:    "INGRESO",
			subcategory: "Ingresos",
			wantErr:     false,
		},
		{
			name:        "unknown category",
			category:    "PRESTAMO",
			subcategory: "COMIDA",
			wantErr:     true,
		},
		{
			name:        "subcategory from another category",
			category:    "INGRESO",
			subcategory: "COMIDA",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := table.Validate(tt.category, tt.subcategory)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q, %q) error = %v, wantErr %v", tt.category, tt.subcategory, err, tt.wantErr)
			}
		})
	}
}

func TestSubcategoriesBelongToOneCategory(t *testing.T) {
	owners := make(map[string]string)
	for _, e := range Default() {
		sub := strings.ToUpper(e.Subcategory)
		if owner, ok := owners[sub]; ok && owner != e.Category {
			t.Errorf("subcategory %q appears under both %q and %q", e.Subcategory, owner, e.Category)
		}
		owners[sub] = e.Category
	}
}

func TestPrompt(t *testing.T) {
	prompt := Default().Prompt()

	for _, want := range []string{
		"- GASTO | COMIDA → Comida y restaurantes",
		"- INGRESO | Ingresos → Todo tipo de ingresos",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt() missing line %q\ngot:\n%s", want, prompt)
		}
	}

	if got := strings.Count(prompt, "\n"); got != len(Default()) {
		t.Errorf("Prompt() has %d lines, want %d", got, len(Default()))
	}
}

func TestCategories(t *testing.T) {
	got := Default().Categories()
	want := []string{"INGRESO", "INVERSIONES", "GASTO"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
