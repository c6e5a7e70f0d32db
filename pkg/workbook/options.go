// Package workbook builds, patches and reads xlsx workbooks from row grids.
package workbook

const (
	// DefaultSheetName is the sheet name used by Build when none is given.
	DefaultSheetName = "Sheet1"
	// DefaultOrigin is the cell receiving the first value of the first row.
	DefaultOrigin = "A1"
)

// Options configures how a grid is placed into a workbook.
type Options struct {
	// SheetName names the single sheet created by Build.
	// Patch takes its target sheet name as an argument and ignores this field.
	SheetName string
	// Origin is the top-left cell of the grid (e.g. "A1").
	Origin string
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		SheetName: DefaultSheetName,
		Origin:    DefaultOrigin,
	}
}

func (o Options) sheetName() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

func (o Options) origin() string {
	if o.Origin == "" {
		return DefaultOrigin
	}
	return o.Origin
}
