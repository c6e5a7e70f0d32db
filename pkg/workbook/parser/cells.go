package parser

import (
	"strconv"

	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRows extracts the typed grid of a sheet.
// Text cells stay strings, numeric cells become int64 or float64, booleans become bool,
// and empty cells become nil. Trailing empty cells of each row are dropped.
// The file stores an integral decimal such as 25.0 as "25", so it reads back
// as int64(25); only a fractional part keeps a value float64.
func ExtractRows(f *excelize.File, sheetName string) ([]models.Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.Row, 0, len(rows))
	for rowIdx, row := range rows {
		typed := make(models.Row, len(row))
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			typed[colIdx] = typedValue(cellType, raw)
		}
		result = append(result, typed)
	}

	return result, nil
}

// ExtractCells extracts cell data from a sheet.
// It returns a slice of CellRow containing non-empty rows.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := ExtractRows(f, sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]any)
		for colIdx, v := range row {
			if v == nil {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = v
		}
		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				C: cellMap,
			})
		}
	}

	return result, nil
}

func typedValue(cellType excelize.CellType, raw string) any {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return raw
	case excelize.CellTypeBool:
		return parseBool(raw)
	default:
		return parseValue(raw)
	}
}
