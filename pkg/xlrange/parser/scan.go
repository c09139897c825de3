package parser

import (
	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
	"github.com/xuri/excelize/v2"
)

// ScanOptions controls how ScanRange filters rows and records addresses.
type ScanOptions struct {
	// IncludeEmpty keeps rows whose cells are all empty.
	IncludeEmpty bool
	// OmitDroppedAddresses records addresses only for rows that end up in the table.
	OmitDroppedAddresses bool
}

// ScanRange reads every cell of w from sheetName, row by row.
//
// Each cell's address is recorded against the index the current row would
// take in the table. Unless OmitDroppedAddresses is set this happens before
// the row is kept or dropped, so addresses of a dropped row share their row
// index with the next kept row.
func ScanRange(f *excelize.File, sheetName string, w models.Window, opts ScanOptions) (models.Table, models.AddressMap, error) {
	reader, err := NewCellReader(f, sheetName)
	if err != nil {
		return nil, nil, err
	}

	table := models.Table{}
	addrs := models.AddressMap{}
	kept := 0

	for row := w.R1; row <= w.R2; row++ {
		values := make([]models.CellValue, 0, w.Cols())
		names := make([]string, 0, w.Cols())
		hasData := false

		for col := w.C1; col <= w.C2; col++ {
			cellName, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, nil, err
			}
			v, err := reader.ReadCell(cellName)
			if err != nil {
				return nil, nil, err
			}
			values = append(values, v)
			if !v.IsEmpty() {
				hasData = true
			}
			if opts.OmitDroppedAddresses {
				names = append(names, cellName)
				continue
			}
			addrs[cellName] = models.Position{Row: kept, Col: col - w.C1}
		}

		if !hasData && !opts.IncludeEmpty {
			continue
		}
		for i, cellName := range names {
			addrs[cellName] = models.Position{Row: kept, Col: i}
		}
		table = append(table, values)
		kept++
	}

	return table, addrs, nil
}
