package parser

import (
	"fmt"
	"strings"

	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/models"
	"github.com/xuri/excelize/v2"
)

// ValidateRows checks every value in rows and returns the first unsupported one
// together with the name of the cell it would occupy.
func ValidateRows(origin string, rows []models.Row) (string, error) {
	col, row, err := excelize.CellNameToCoordinates(origin)
	if err != nil {
		return origin, err
	}
	for i, r := range rows {
		for j, v := range r {
			if _, err := NormalizeValue(v); err != nil {
				cell, _ := excelize.CoordinatesToCellName(col+j, row+i)
				return cell, err
			}
		}
	}
	return "", nil
}

// WriteRows writes rows into sheetName, the first value of the first row at origin.
// Values are stored as given; rows are not padded or checked against each other.
func WriteRows(f *excelize.File, sheetName, origin string, rows []models.Row) error {
	col, row, err := excelize.CellNameToCoordinates(origin)
	if err != nil {
		return err
	}

	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		values := make([]any, len(r))
		for j, v := range r {
			nv, err := NormalizeValue(v)
			if err != nil {
				return err
			}
			values[j] = nv
		}

		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row+i, err)
		}
	}

	return nil
}

// ReplaceSheet discards the sheet matching sheetName (case-insensitively, as in
// Excel) together with everything attached to it, such as comments, merged
// ranges, tables and data validations, and creates an empty sheet named
// sheetName at the same position.
func ReplaceSheet(f *excelize.File, sheetName string) error {
	list := f.GetSheetList()
	pos := -1
	for i, name := range list {
		if strings.EqualFold(name, sheetName) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return fmt.Errorf("sheet %q does not exist", sheetName)
	}
	active := f.GetActiveSheetIndex()

	// A workbook always keeps at least one sheet.
	var placeholder string
	if len(list) == 1 {
		placeholder = placeholderName(list)
		if _, err := f.NewSheet(placeholder); err != nil {
			return fmt.Errorf("add placeholder sheet: %w", err)
		}
	}

	if err := f.DeleteSheet(list[pos]); err != nil {
		return fmt.Errorf("delete sheet %q: %w", list[pos], err)
	}
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("add sheet %q: %w", sheetName, err)
	}
	if pos+1 < len(list) {
		if err := f.MoveSheet(sheetName, list[pos+1]); err != nil {
			return fmt.Errorf("move sheet %q: %w", sheetName, err)
		}
	}
	if placeholder != "" {
		if err := f.DeleteSheet(placeholder); err != nil {
			return fmt.Errorf("delete placeholder sheet: %w", err)
		}
	}

	f.SetActiveSheet(active)
	return nil
}

// placeholderName returns a sheet name not present in list.
func placeholderName(list []string) string {
	taken := make(map[string]bool, len(list))
	for _, name := range list {
		taken[strings.ToLower(name)] = true
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("tmp%d", i)
		if !taken[name] {
			return name
		}
	}
}
