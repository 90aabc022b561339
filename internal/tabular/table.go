package tabular

import "cmsenrich/internal/common"

// Table is an ordered header row plus data rows of strings. Rows are kept in
// file order; all cells are strings since the enrichment workflow never
// interprets pass-through columns.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a table from a header row
func NewTable(headers []string) *Table {
	return &Table{Headers: headers}
}

// ColumnIndex returns the index of the named column. The match is
// case-sensitive.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, header := range t.Headers {
		if header == name {
			return i, true
		}
	}
	return 0, false
}

// AppendRow adds a data row, padding or truncating it to the header width
func (t *Table) AppendRow(row []string) {
	t.Rows = append(t.Rows, t.normalizeRow(row))
}

// AppendColumns extends the table with new columns. values must hold one
// slice per existing row, each with one cell per new header.
func (t *Table) AppendColumns(headers []string, values [][]string) error {
	if len(values) != len(t.Rows) {
		return common.NewValidationError("values", len(values), "value rows must match existing row count")
	}
	for i, extra := range values {
		if len(extra) != len(headers) {
			return common.NewValidationError("values", len(extra), "value cells must match new header count")
		}
		t.Rows[i] = append(t.Rows[i], extra...)
	}
	t.Headers = append(t.Headers, headers...)
	return nil
}

// normalizeRow pads or truncates a row to the header width
func (t *Table) normalizeRow(row []string) []string {
	width := len(t.Headers)
	if len(row) == width {
		return row
	}
	normalized := make([]string, width)
	copy(normalized, row)
	return normalized
}
