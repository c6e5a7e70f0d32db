package workbook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/models"
	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/parser"
	"github.com/xuri/excelize/v2"
)

// Patch puts rows into the sheet named sheetName of f.
// An existing sheet of that name is replaced as a whole by a new sheet at the
// same position; otherwise a new sheet is appended after the existing ones.
// Every other sheet is left untouched. Sheet names match case-insensitively,
// as in Excel, and the patched sheet takes the spelling of sheetName.
func Patch(f *excelize.File, sheetName string, rows []models.Row, opts Options) error {
	if err := checkSheetName(sheetName); err != nil {
		return err
	}
	if cell, err := parser.ValidateRows(opts.origin(), rows); err != nil {
		return &CellError{SheetName: sheetName, Cell: cell, Err: err}
	}

	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSheetName, err)
	}

	if idx >= 0 {
		if err := parser.ReplaceSheet(f, sheetName); err != nil {
			return fmt.Errorf("replace sheet %q: %w", sheetName, err)
		}
	} else {
		if _, err := f.NewSheet(sheetName); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSheetName, err)
		}
	}

	return parser.WriteRows(f, sheetName, opts.origin(), rows)
}

// PatchFile loads the workbook at src, patches sheetName with rows and writes
// the result to dst. The source file is only read.
func PatchFile(src, dst, sheetName string, rows []models.Row, opts Options) error {
	same, err := samePath(src, dst)
	if err != nil {
		return err
	}
	if same {
		return &OperationError{Op: "save", Path: dst, Err: ErrSameFile}
	}

	f, err := open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Patch(f, sheetName, rows, opts); err != nil {
		return err
	}

	return save(f, dst)
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}

	// Distinct spellings of one file, e.g. through a symlink.
	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	if errA != nil || errB != nil {
		return false, nil
	}
	return os.SameFile(infoA, infoB), nil
}
