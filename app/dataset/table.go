package dataset

import "strings"

// ColumnPatterns maps a logical column role to the header substrings
// that identify it. The source spreadsheets are independently authored,
// so columns are located by substring instead of a fixed schema; other
// institutions can be supported by editing this table.
var ColumnPatterns = map[string][]string{
	"student_id": {"MIS"},
	"name":       {"Name"},
	"branch":     {"Branch"},
	"subject":    {"Subject", "Title"},
	"division":   {"Division"},
	"batch":      {"Batch"},
	"type":       {"Type"},
	"time":       {"Time"},
	"day":        {"Day"},
	"venue":      {"Venue"},
}

// Table is one sheet of tabular spreadsheet data: a header row plus
// string cells. Rows may be ragged; Value is safe on any index.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Column finds the index of the column for a logical role using
// ColumnPatterns. The second return is false when no header matches.
func (t *Table) Column(role string) (int, bool) {
	patterns, ok := ColumnPatterns[role]
	if !ok {
		return -1, false
	}
	return t.ColumnByPatterns(patterns...)
}

// ColumnByPatterns finds the first column whose header contains any of
// the given substrings, case-insensitively.
func (t *Table) ColumnByPatterns(patterns ...string) (int, bool) {
	for i, h := range t.Headers {
		header := strings.ToUpper(strings.TrimSpace(h))
		for _, p := range patterns {
			if strings.Contains(header, strings.ToUpper(p)) {
				return i, true
			}
		}
	}
	return -1, false
}

// Value returns the cell at (row, col), or "" when the row is short or
// either index is out of range. Spreadsheet rows frequently omit
// trailing empty cells, so missing simply means empty here.
func (t *Table) Value(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}
