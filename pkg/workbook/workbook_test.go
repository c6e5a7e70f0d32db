package workbook

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ShotaroTanimura/outputExcel/pkg/workbook/models"
	"github.com/xuri/excelize/v2"
)

// sourceSheets is the content of the fixture workbook used by the patch tests.
var sourceSheets = []models.Sheet{
	{Name: "Sheet1", Rows: []models.Row{{"id", "value"}, {int64(1), "keep me"}}},
	{Name: "Sheet2", Rows: []models.Row{{"old", "header", "row", "with", "six", "cols"}, {"a"}, {"b"}, {"c"}, {"d"}}},
	{Name: "Notes", Rows: []models.Row{{"memo"}, {2.5}}},
}

// writeFixture saves a workbook holding sheets and returns its path.
func writeFixture(t *testing.T, sheets []models.Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if s.Name != "Sheet1" {
				if err := f.SetSheetName("Sheet1", s.Name); err != nil {
					t.Fatalf("Failed to rename sheet: %v", err)
				}
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("Failed to add sheet %q: %v", s.Name, err)
		}
		for r, row := range s.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			values := []any(row)
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				t.Fatalf("Failed to write fixture row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "sample.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save fixture: %v", err)
	}
	return path
}

// readSheets reads path back and returns its sheets without used ranges.
func readSheets(t *testing.T, path string) []models.Sheet {
	t.Helper()

	wb, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) failed: %v", path, err)
	}
	sheets := make([]models.Sheet, len(wb.Sheets))
	for i, s := range wb.Sheets {
		sheets[i] = models.Sheet{Name: s.Name, Rows: s.Rows}
	}
	return sheets
}

func assertRows(t *testing.T, sheetName string, got, want []models.Row) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sheet %q rows = %#v, expected %#v", sheetName, got, want)
	}
}
