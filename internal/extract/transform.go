package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// fromRaw coerces the decoded model output into a Result. The output
// is untrusted: wrong-typed or missing fields degrade to zero values
// instead of failing the whole extraction, so shape repair stays in
// Normalize and the no-amount check stays in the handler.
func fromRaw(obj map[string]interface{}) *Result {
	return &Result{
		Date:        stringField(obj, "date"),
		Amount:      decimalField(obj, "amount"),
		Currency:    stringField(obj, "currency"),
		Category:    stringField(obj, "category"),
		Subcategory: stringField(obj, "subcategory"),
		Description: stringField(obj, "description"),
	}
}

func stringField(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func decimalField(m map[string]interface{}, key string) decimal.Decimal {
	v, ok := m[key]
	if !ok || v == nil {
		return decimal.Zero
	}
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
