package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/models"
	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/parser"
	"github.com/xuri/excelize/v2"
)

// Read extracts every sheet of f, in workbook order, into the logical model.
func Read(f *excelize.File, bookName string) (*models.Workbook, error) {
	wb := &models.Workbook{
		BookName: bookName,
		Sheets:   []models.Sheet{},
	}

	for _, sheetName := range f.GetSheetList() {
		rows, err := parser.ExtractRows(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		usedRange, err := parser.DetectUsedRange(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{
			Name:      sheetName,
			Rows:      rows,
			UsedRange: usedRange,
		})
	}

	return wb, nil
}

// ReadFile opens the workbook at path and reads it with Read.
func ReadFile(path string) (*models.Workbook, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, filepath.Base(path))
}

// open opens an existing workbook, mapping failures onto ErrFileNotFound
// and ErrInvalidFormat.
func open(path string) (*excelize.File, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &OperationError{Op: "open", Path: path, Err: fmt.Errorf("%w: %v", ErrFileNotFound, err)}
	}
	if err != nil {
		return nil, &OperationError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &OperationError{Op: "open", Path: path, Err: fmt.Errorf("%w: is a directory", ErrInvalidFormat)}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, &OperationError{Op: "open", Path: path, Err: err}
		}
		return nil, &OperationError{Op: "open", Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
	}

	return f, nil
}

// ReadCellsFile returns the sparse cell view of one sheet of the workbook at path.
func ReadCellsFile(path, sheetName string) ([]models.CellRow, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: no sheet %q in %s", ErrInvalidSheetName, sheetName, path)
	}

	return parser.ExtractCells(f, sheetName)
}
