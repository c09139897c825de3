package parser

import (
	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
	"github.com/xuri/excelize/v2"
)

// LastRow returns the last 1-based row of sheetName that holds any value,
// or 0 when the sheet is empty.
func LastRow(f *excelize.File, sheetName string) (int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// UsedRange returns the bounding box of the non-empty cells of sheetName.
// The second result is false when the sheet holds no data.
func UsedRange(f *excelize.File, sheetName string) (models.Window, bool, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Window{}, false, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Window{}, false, nil
	}

	return models.Window{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, true, nil
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
