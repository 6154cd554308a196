// Package ledger persists transaction records in an append-only Google
// Sheet, one row per recorded movement.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// Row is one transaction record as it lands in the sheet. Rows are
// appended once and never updated or deleted; there is no identifier
// and duplicates are accepted.
type Row struct {
	Date        string          // logical transaction date, "YYYY-MM-DD"
	Category    string
	Subcategory string
	Amount      decimal.Decimal
	Comment     string // the original user text
	RecordedAt  string // wall-clock processing time, "YYYY-MM-DD HH:MM:SS" in America/Lima
}

// cells returns the six ordered values the append operation writes.
// Column order is part of the sheet contract; do not reorder.
func (r Row) cells() []interface{} {
	return []interface{}{
		r.Date,
		r.Category,
		r.Subcategory,
		r.Amount.String(),
		r.Comment,
		r.RecordedAt,
	}
}

// Store is the persistence boundary. This interface enables mocking of
// the sheet in handler tests.
type Store interface {
	// Append writes one row to the end of the sheet.
	Append(ctx context.Context, row Row) error

	// ReadAll returns every stored row as a header-keyed mapping,
	// using the first row as headers. A sheet with fewer than two
	// rows (header-only or empty) yields an empty result.
	ReadAll(ctx context.Context) ([]map[string]string, error)
}
