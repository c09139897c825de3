package parser

import (
	"testing"

	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
	"github.com/xuri/excelize/v2"
)

func TestFindDataBounds(t *testing.T) {
	rows := [][]string{
		{},
		{"", "", "x"},
		{"", "y"},
		{"", "", "", ""},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow != 1 || maxRow != 2 || minCol != 1 || maxCol != 2 {
		t.Errorf("findDataBounds = %d, %d, %d, %d, expected 1, 2, 1, 2", minRow, maxRow, minCol, maxCol)
	}

	minRow, _, _, _ = findDataBounds([][]string{{""}})
	if minRow != -1 {
		t.Errorf("Expected -1 for empty rows, got %d", minRow)
	}
}

func TestUsedRangeAndLastRow(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "C2", "a")
	f.SetCellValue("Sheet1", "E9", 1)
	f.NewSheet("Empty")
	f2 := openSaved(t, f)

	w, ok, err := UsedRange(f2, "Sheet1")
	if err != nil || !ok {
		t.Fatalf("UsedRange failed: %v, %v", ok, err)
	}
	expected := models.Window{R1: 2, C1: 3, R2: 9, C2: 5}
	if w != expected {
		t.Errorf("UsedRange = %+v, expected %+v", w, expected)
	}

	last, err := LastRow(f2, "Sheet1")
	if err != nil || last != 9 {
		t.Errorf("LastRow = %d, %v, expected 9", last, err)
	}

	if _, ok, err := UsedRange(f2, "Empty"); err != nil || ok {
		t.Errorf("UsedRange(Empty) = %v, %v, expected no data", ok, err)
	}
	if last, err := LastRow(f2, "Empty"); err != nil || last != 0 {
		t.Errorf("LastRow(Empty) = %d, %v, expected 0", last, err)
	}
	if _, err := LastRow(f2, "Missing"); err == nil {
		t.Errorf("LastRow(Missing): expected error")
	}
}
