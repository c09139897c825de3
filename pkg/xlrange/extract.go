package xlrange

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/parser"
	"github.com/xuri/excelize/v2"
)

// Extract reads columns startColumn..endColumn (1-based, inclusive) of
// sheetName over the row window given by opts.
//
// It returns the kept rows and a map from each scanned cell address to its
// position in the table. Rows whose cells are all empty are dropped unless
// opts.IncludeEmpty is set. Their addresses are still recorded, against the
// row index the next kept row will take, unless opts.OmitDroppedAddresses is
// set.
func Extract(path, sheetName string, startColumn, endColumn int, opts Options) (models.Table, models.AddressMap, error) {
	_, table, addrs, err := extract(path, sheetName, startColumn, endColumn, opts)
	if err != nil {
		return nil, nil, err
	}
	return table, addrs, nil
}

// ExtractByLetters is Extract with columns given as letters, e.g. "A" to "AB".
func ExtractByLetters(path, sheetName, startColumn, endColumn string, opts Options) (models.Table, models.AddressMap, error) {
	start, end, err := columnNumbers(startColumn, endColumn)
	if err != nil {
		return nil, nil, err
	}
	return Extract(path, sheetName, start, end, opts)
}

// ExtractRef is Extract with the window given as a reference such as
// "B2:D10". The reference's rows apply unless opts sets StartRow or EndRow.
// A "Sheet!" prefix is used when sheetName is empty and must match it otherwise.
func ExtractRef(path, sheetName, ref string, opts Options) (models.Table, models.AddressMap, error) {
	sheetName, w, opts, err := ResolveRef(sheetName, ref, opts)
	if err != nil {
		return nil, nil, err
	}
	return Extract(path, sheetName, w.C1, w.C2, opts)
}

// ExtractResult runs Extract and bundles the outcome with the resolved window.
func ExtractResult(path, sheetName string, startColumn, endColumn int, opts Options) (*models.Result, error) {
	w, table, addrs, err := extract(path, sheetName, startColumn, endColumn, opts)
	if err != nil {
		return nil, err
	}
	return &models.Result{
		BookName:  filepath.Base(path),
		Sheet:     sheetName,
		Window:    w,
		Table:     table,
		Addresses: addrs,
	}, nil
}

// SheetNames lists the sheets of a workbook in tab order with their data bounds.
func SheetNames(path string) ([]models.SheetInfo, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []models.SheetInfo
	for _, name := range f.GetSheetList() {
		w, ok, err := parser.UsedRange(f, name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		info := models.SheetInfo{Name: name}
		if ok {
			info.MaxRow = w.R2
			info.MaxCol = w.C2
		}
		sheets = append(sheets, info)
	}
	return sheets, nil
}

func extract(path, sheetName string, startColumn, endColumn int, opts Options) (models.Window, models.Table, models.AddressMap, error) {
	f, err := openFile(path)
	if err != nil {
		return models.Window{}, nil, nil, err
	}
	defer f.Close()

	if sheets := f.GetSheetList(); !slices.Contains(sheets, sheetName) {
		return models.Window{}, nil, nil, &SheetNotFoundError{Sheet: sheetName, Available: sheets}
	}

	if startColumn < 1 || endColumn < startColumn || endColumn > excelize.MaxColumns {
		return models.Window{}, nil, nil, &ColumnRangeError{Start: startColumn, End: endColumn}
	}

	w := models.Window{C1: startColumn, C2: endColumn}
	if w.R1, w.R2, err = resolveRows(f, sheetName, opts); err != nil {
		return models.Window{}, nil, nil, err
	}

	table, addrs, err := parser.ScanRange(f, sheetName, w, opts.scanOptions())
	if err != nil {
		return models.Window{}, nil, nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	return w, table, addrs, nil
}

func openFile(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	return f, nil
}

// resolveRows applies the row defaults. An end row before the start row is
// allowed and yields an empty window.
func resolveRows(f *excelize.File, sheetName string, opts Options) (start, end int, err error) {
	start = opts.ResolveStartRow()
	if start < 1 || start > excelize.TotalRows {
		return 0, 0, fmt.Errorf("%w: invalid start row %d", ErrInvalidInput, opts.StartRow)
	}

	end = opts.EndRow
	switch {
	case end < 0 || end > excelize.TotalRows:
		return 0, 0, fmt.Errorf("%w: invalid end row %d", ErrInvalidInput, opts.EndRow)
	case end == 0:
		if end, err = parser.LastRow(f, sheetName); err != nil {
			return 0, 0, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
	}
	return start, end, nil
}

func columnNumbers(startColumn, endColumn string) (start, end int, err error) {
	if start, err = excelize.ColumnNameToNumber(startColumn); err != nil {
		return 0, 0, fmt.Errorf("%w: invalid column letters: %v", ErrInvalidInput, err)
	}
	if end, err = excelize.ColumnNameToNumber(endColumn); err != nil {
		return 0, 0, fmt.Errorf("%w: invalid column letters: %v", ErrInvalidInput, err)
	}
	return start, end, nil
}

// ResolveRef parses a range reference for sheetName the way ExtractRef does,
// returning the sheet to read, the referenced window and the adjusted options.
func ResolveRef(sheetName, ref string, opts Options) (string, models.Window, Options, error) {
	refSheet, w, err := parser.ParseRange(ref)
	if err != nil {
		return "", models.Window{}, opts, fmt.Errorf("%w: invalid range reference: %v", ErrInvalidInput, err)
	}
	switch {
	case sheetName == "":
		sheetName = refSheet
	case refSheet != "" && refSheet != sheetName:
		return "", models.Window{}, opts, fmt.Errorf("%w: range %q does not belong to sheet %q", ErrInvalidInput, ref, sheetName)
	}
	if opts.StartRow == 0 && opts.EndRow == 0 {
		opts.StartRow, opts.EndRow = w.R1, w.R2
	}
	return sheetName, w, opts, nil
}
