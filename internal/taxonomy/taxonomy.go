// Package taxonomy holds the fixed category table used both to prompt
// the extraction model and to check its output.
package taxonomy

import (
	"fmt"
	"strings"
)

// Entry is one (category, subcategory, description) triple.
type Entry struct {
	Category    string
	Subcategory string
	Description string
}

// Table is the full category taxonomy.
type Table []Entry

// Default returns the taxonomy the recorder was built around. Every
// subcategory belongs to exactly one category.
func Default() Table {
	return Table{
		{"INGRESO", "Ingresos", "Todo tipo de ingresos"},
		{"INVERSIONES", "Inversiones", "Dinero invertido"},
		{"GASTO", "BASICO", "Gastos básicos no incluidos en otras categorías. Incluye pagos de servicios, ropa, zapatos, zapatillas, etc."},
		{"GASTO", "COMIDA", "Comida y restaurantes"},
		{"GASTO", "COSAS", "Compras personales"},
		{"GASTO", "ENTRETENIMIENTO", "Streaming, cine, etc."},
		{"GASTO", "ESTUDIOS", "Educación"},
		{"GASTO", "OTROS", "Gastos imprevistos"},
		{"GASTO", "VIAJES", "Viajes y hoteles"},
		{"GASTO", "SALUD", "Salud y medicinas"},
		{"GASTO", "TRANSPORTE", "Taxis, buses, etc."},
	}
}

// Prompt renders the taxonomy as the definition block embedded in the
// extraction system prompt, one "- CATEGORY | SUBCATEGORY → description"
// line per entry.
func (t Table) Prompt() string {
	var b strings.Builder
	for _, e := range t {
		b.WriteString(fmt.Sprintf("- %s | %s → %s\n", e.Category, e.Subcategory, e.Description))
	}
	return b.String()
}

// Categories returns the distinct category names in table order.
func (t Table) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range t {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

// Subcategories returns the subcategory names for a category,
// case-insensitively matched.
func (t Table) Subcategories(category string) []string {
	var out []string
	for _, e := range t {
		if normalize(e.Category) == normalize(category) {
			out = append(out, e.Subcategory)
		}
	}
	return out
}

// Valid reports whether the category/subcategory pair appears in the
// table. Comparison is case-insensitive with surrounding whitespace
// ignored.
func (t Table) Valid(category, subcategory string) bool {
	return t.Validate(category, subcategory) == nil
}

// Validate checks a category and subcategory against the table.
// Returns nil if valid, a descriptive error if not.
func (t Table) Validate(category, subcategory string) error {
	normCat := normalize(category)
	normSub := normalize(subcategory)

	found := false
	for _, e := range t {
		if normalize(e.Category) != normCat {
			continue
		}
		found = true
		if normalize(e.Subcategory) == normSub {
			return nil
		}
	}

	if !found {
		return fmt.Errorf("invalid category: %q", category)
	}
	return fmt.Errorf("invalid subcategory %q for category %q. Valid subcategories: %v",
		subcategory, category, t.Subcategories(category))
}

// normalize prepares a name for case-insensitive comparison.
func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
