package workbook

import (
	"errors"
	"fmt"

	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/parser"
)

// ErrFileNotFound indicates the source file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the source file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrUnsupportedValue indicates a cell value whose type cannot be stored.
var ErrUnsupportedValue = parser.ErrUnsupportedValue

// ErrInvalidSheetName indicates an empty or otherwise unusable sheet name.
var ErrInvalidSheetName = errors.New("invalid sheet name")

// ErrSameFile indicates a patch whose output path is its source path.
var ErrSameFile = errors.New("output path is the source path")

// OperationError represents a failure of one workbook file operation.
type OperationError struct {
	Op   string // "open", "save"
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// CellError represents a failure tied to a single cell of a sheet.
type CellError struct {
	SheetName string
	Cell      string
	Err       error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet %q cell %s: %v", e.SheetName, e.Cell, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
