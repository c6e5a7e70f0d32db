package workbook

import (
	"fmt"

	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/models"
	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/parser"
	"github.com/xuri/excelize/v2"
)

// Build creates a new in-memory workbook holding exactly one sheet with rows.
// The caller owns the returned file and must Close it.
func Build(rows []models.Row, opts Options) (*excelize.File, error) {
	sheetName := opts.sheetName()
	if err := checkSheetName(sheetName); err != nil {
		return nil, err
	}
	if cell, err := parser.ValidateRows(opts.origin(), rows); err != nil {
		return nil, &CellError{SheetName: sheetName, Cell: cell, Err: err}
	}

	f := excelize.NewFile()

	// A new file starts with a single default sheet.
	if sheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheetName); err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %v", ErrInvalidSheetName, err)
		}
	}

	if err := parser.WriteRows(f, sheetName, opts.origin(), rows); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// BuildFile builds a workbook from rows and writes it to path,
// creating or overwriting the file.
func BuildFile(path string, rows []models.Row, opts Options) error {
	f, err := Build(rows, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	return save(f, path)
}

func save(f *excelize.File, path string) error {
	if err := f.SaveAs(path); err != nil {
		return &OperationError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func checkSheetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSheetName)
	}
	return nil
}
