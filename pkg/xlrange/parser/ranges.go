package parser

import (
	"fmt"
	"strings"

	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range reference such as "B2:D10", "$B$2:$D$10" or
// "'My Sheet'!B2:D10" into a window. A single cell "C3" yields a one-cell
// window. The sheet prefix, if any, is returned without quotes.
func ParseRange(ref string) (sheetName string, w models.Window, err error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return "", models.Window{}, fmt.Errorf("invalid range reference %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", models.Window{}, err
	}
	endCol, endRow := startCol, startRow
	if len(parts) == 2 {
		endCol, endRow, err = excelize.CellNameToCoordinates(parts[1])
		if err != nil {
			return "", models.Window{}, err
		}
	}

	return sheetName, models.Window{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}

// ParseColumns parses a column span such as "A:C" or "b" into 1-based
// column numbers.
func ParseColumns(span string) (start, end int, err error) {
	span = strings.ReplaceAll(strings.TrimSpace(span), "$", "")
	first, last, found := strings.Cut(span, ":")
	if !found {
		last = first
	}
	if start, err = excelize.ColumnNameToNumber(first); err != nil {
		return 0, 0, err
	}
	if end, err = excelize.ColumnNameToNumber(last); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
