package models

// Sheet represents a named grid of cell values.
type Sheet struct {
	// Name is the sheet name, unique within a workbook.
	Name string `json:"name"`
	// Rows is the grid in row order. The first row is usually a header.
	Rows []Row `json:"rows"`
	// UsedRange is the range covering every non-empty cell (e.g. "A1:C3"), empty for a blank sheet.
	UsedRange string `json:"used_range,omitempty"`
}

