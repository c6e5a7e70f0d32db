// Package models defines the logical data structures read from and written to workbooks.
package models

// Row is an ordered sequence of cell values.
// A value is a string, an integer, a float, a bool, a time.Time, or nil for an empty cell.
// Rows in the same grid may differ in length and in the types of their columns.
type Row []any

// CellRow represents a single non-empty row in sparse form.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string, 1-based) to cell value.
	C map[string]any `json:"c"`
}
