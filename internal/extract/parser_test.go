package extract

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain object untouched",
			raw:  `{"amount": 35}`,
			want: `{"amount": 35}`,
		},
		{
			name: "json fence stripped",
			raw:  "```json\n{\"amount\": 35}\n```",
			want: `{"amount": 35}`,
		},
		{
			name: "bare fence stripped",
			raw:  "```\n{\"amount\": 35}\n```",
			want: `{"amount": 35}`,
		},
		{
			name: "prose around object dropped",
			raw:  "Aquí está el resultado:\n{\"amount\": 35}\nEspero que ayude.",
			want: `{"amount": 35}`,
		},
		{
			name: "whitespace trimmed",
			raw:  "  \n{\"amount\": 35}\n  ",
			want: `{"amount": 35}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanModelJSON(tt.raw); got != tt.want {
				t.Errorf("cleanModelJSON(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	var obj map[string]interface{}
	payload := `{
		"date": "2024-03-09",
		"amount": 35.5,
		"currency": "PEN",
		"category": "GASTO",
		"subcategory": "COMIDA",
		"description": "almuerzo"
	}`
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	got := fromRaw(obj)

	if got.Date != "2024-03-09" {
		t.Errorf("Date = %q", got.Date)
	}
	if !got.Amount.Equal(decimal.NewFromFloat(35.5)) {
		t.Errorf("Amount = %s, want 35.5", got.Amount)
	}
	if got.Category != "GASTO" || got.Subcategory != "COMIDA" {
		t.Errorf("Category/Subcategory = %q/%q", got.Category, got.Subcategory)
	}
	if !got.HasAmount() {
		t.Error("HasAmount() = false, want true")
	}
}

func TestFromRaw_ToleratesMissingAndWrongTypes(t *testing.T) {
	got := fromRaw(map[string]interface{}{
		"date":     12345,
		"amount":   nil,
		"currency": true,
	})

	if got.Date != "" || got.Currency != "" {
		t.Errorf("wrong-typed fields should degrade to empty, got %+v", got)
	}
	if got.HasAmount() {
		t.Error("HasAmount() = true for absent amount")
	}
}

func TestFromRaw_AmountAsString(t *testing.T) {
	got := fromRaw(map[string]interface{}{"amount": "42.90"})
	if !got.Amount.Equal(decimal.RequireFromString("42.90")) {
		t.Errorf("Amount = %s, want 42.90", got.Amount)
	}

	got = fromRaw(map[string]interface{}{"amount": "mucho"})
	if got.HasAmount() {
		t.Error("unparseable string amount should be treated as absent")
	}
}
