package extract

import (
	"github.com/shopspring/decimal"
)

// Result is the raw structured output of the extraction model after
// field coercion. Every field is untrusted until Normalize has run;
// a zero Amount means the model produced no usable amount.
type Result struct {
	Date        string          // expected "YYYY-MM-DD", repaired when not
	Amount      decimal.Decimal // zero when absent
	Currency    string          // 3-letter code after normalization
	Category    string
	Subcategory string
	Description string // the model's echo of the user text
}

// HasAmount reports whether the extraction produced a usable amount.
// An absent or zero amount makes the whole message unrecordable.
func (r *Result) HasAmount() bool {
	return !r.Amount.IsZero()
}
