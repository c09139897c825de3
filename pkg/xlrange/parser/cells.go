package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
	"github.com/xuri/excelize/v2"
)

// CellReader reads typed cell values from one sheet of an open workbook.
type CellReader struct {
	f         *excelize.File
	sheetName string
	date1904  bool
	// dateStyles caches whether a style index carries a date number format.
	dateStyles map[int]bool
}

// NewCellReader returns a CellReader for sheetName.
func NewCellReader(f *excelize.File, sheetName string) (*CellReader, error) {
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, err
	}
	r := &CellReader{
		f:          f,
		sheetName:  sheetName,
		dateStyles: make(map[int]bool),
	}
	if props.Date1904 != nil {
		r.date1904 = *props.Date1904
	}
	return r, nil
}

// Read returns the value at the 1-based (col, row) coordinates.
// Formula cells yield their cached result.
func (r *CellReader) Read(col, row int) (models.CellValue, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.CellValue{}, err
	}
	return r.ReadCell(cellName)
}

// ReadCell returns the value of the named cell, e.g. "B7".
func (r *CellReader) ReadCell(cellName string) (models.CellValue, error) {
	cellType, err := r.f.GetCellType(r.sheetName, cellName)
	if err != nil {
		return models.CellValue{}, err
	}
	raw, err := r.f.GetCellValue(r.sheetName, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.CellValue{}, err
	}
	if raw == "" {
		return models.CellValue{}, nil
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeDate:
		if t, ok := parseISOTime(raw); ok {
			return models.DateTime(t), nil
		}
		return models.Text(raw), nil
	case excelize.CellTypeError, excelize.CellTypeSharedString,
		excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.Text(raw), nil
	}

	v := parseValue(raw)
	n, ok := v.Number()
	if !ok {
		return v, nil
	}
	isDate, err := r.hasDateFormat(cellName)
	if err != nil {
		return models.CellValue{}, err
	}
	if isDate {
		t, err := excelize.ExcelDateToTime(n, r.date1904)
		if err == nil {
			return models.DateTime(t), nil
		}
	}
	return v, nil
}

// hasDateFormat reports whether the cell's number format renders a date or time.
func (r *CellReader) hasDateFormat(cellName string) (bool, error) {
	idx, err := r.f.GetCellStyle(r.sheetName, cellName)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dateStyles[idx]; ok {
		return isDate, nil
	}
	style, err := r.f.GetStyle(idx)
	if err != nil {
		return false, err
	}
	isDate := false
	if style != nil {
		if style.CustomNumFmt != nil {
			isDate = IsDateFormat(*style.CustomNumFmt)
		} else {
			isDate = IsBuiltInDateFormat(style.NumFmt)
		}
	}
	r.dateStyles[idx] = isDate
	return isDate, nil
}

// parseValue attempts to parse a raw string value as a number.
// Returns a Number for numeric text or a Text for anything else.
func parseValue(s string) models.CellValue {
	if s == "" {
		return models.CellValue{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}

// isoLayouts are the layouts used by ISO 8601 date cells (t="d").
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
}

func parseISOTime(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
