package extract

import (
	"regexp"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/oswaldo-hello/capirubot/internal/dates"
)

// isoDateShape is the full YYYY-MM-DD shape a model-supplied date must
// have to be trusted as-is.
var isoDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Normalize repairs the shape-level problems the model is known to
// produce and returns a fixed copy:
//
//   - a missing or malformed date is re-resolved from the original
//     user text against today
//   - any currency mentioning "sol" becomes the fixed code "PEN"
//   - a compound "CATEGORY | SUBCATEGORY" category is split once, the
//     tail filling subcategory only when it was absent
//
// It never rejects unrecognized category or subcategory values; the
// taxonomy check is the caller's concern.
func Normalize(res *Result, originalText string, today civil.Date) *Result {
	out := *res

	if !isoDateShape.MatchString(out.Date) {
		out.Date = dates.Resolve(originalText, today)
	}

	if strings.Contains(strings.ToLower(out.Currency), "sol") {
		out.Currency = "PEN"
	}

	if strings.Contains(out.Category, "|") {
		parts := strings.SplitN(out.Category, "|", 2)
		out.Category = strings.TrimSpace(parts[0])
		if len(parts) > 1 && out.Subcategory == "" {
			out.Subcategory = strings.TrimSpace(parts[1])
		}
	}

	return &out
}
