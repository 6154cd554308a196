package ledger

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// rowRange covers the six ledger columns on the first sheet.
const rowRange = "A:F"

// SheetsStore is the concrete Store backed by the Google Sheets API.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsStore builds a store for the given spreadsheet. When
// credentialsFile is empty, Application Default Credentials are used.
func NewSheetsStore(ctx context.Context, spreadsheetID, credentialsFile string) (*SheetsStore, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewSheetsStore: create sheets service: %w", err)
	}

	return &SheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}, nil
}

// Append writes one row after the last non-empty row of the sheet.
// USER_ENTERED lets the sheet parse the amount cell as a number.
func (s *SheetsStore) Append(ctx context.Context, row Row) error {
	vr := &sheets.ValueRange{
		Values: [][]interface{}{row.cells()},
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, rowRange, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("Append: append row: %w", err)
	}

	return nil
}

// ReadAll fetches the whole sheet and maps data rows by header.
func (s *SheetsStore) ReadAll(ctx context.Context) ([]map[string]string, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, rowRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("ReadAll: get values: %w", err)
	}

	return mapRows(resp.Values), nil
}

// mapRows converts raw sheet values into header-keyed records. The
// first row supplies the headers; rows shorter than the header list
// pad with empty strings.
func mapRows(values [][]interface{}) []map[string]string {
	if len(values) < 2 {
		return []map[string]string{}
	}

	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = fmt.Sprint(h)
	}

	records := make([]map[string]string, 0, len(values)-1)
	for _, row := range values[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = fmt.Sprint(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records
}
