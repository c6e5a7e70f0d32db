// Package output serializes workbook models.
package output

import (
	"encoding/json"

	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/models"
)

// ToJSON serializes a workbook to JSON.
func ToJSON(wb *models.Workbook, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet to JSON.
func SheetToJSON(sheet *models.Sheet, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// CellsToJSON serializes the sparse cell view of a sheet to JSON.
func CellsToJSON(rows []models.CellRow, pretty bool) ([]byte, error) {
	if rows == nil {
		rows = []models.CellRow{}
	}
	return marshal(rows, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
