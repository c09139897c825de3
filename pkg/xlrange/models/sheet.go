package models

// Table holds extracted rows in scan order. Every row has one value per
// requested column.
type Table [][]CellValue

// Equal reports whether t and o have the same shape and cell values.
func (t Table) Equal(o Table) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if len(t[i]) != len(o[i]) {
			return false
		}
		for j := range t[i] {
			if !t[i][j].Equal(o[i][j]) {
				return false
			}
		}
	}
	return true
}

// Values returns the table as plain Go values (see CellValue.Value).
func (t Table) Values() [][]any {
	out := make([][]any, len(t))
	for i, row := range t {
		out[i] = make([]any, len(row))
		for j, v := range row {
			out[i][j] = v.Value()
		}
	}
	return out
}

// Position locates a cell inside a Table (0-based).
type Position struct {
	// Row is the table row index.
	Row int `json:"row"`
	// Col is the index within the row.
	Col int `json:"col"`
}

// AddressMap maps a cell address such as "B7" to its position in a Table.
type AddressMap map[string]Position

// SheetInfo describes one worksheet of a workbook.
type SheetInfo struct {
	// Name is the sheet tab name.
	Name string `json:"name"`
	// MaxRow is the last row holding data (1-based, 0 when empty).
	MaxRow int `json:"max_row"`
	// MaxCol is the last column holding data (1-based, 0 when empty).
	MaxCol int `json:"max_col"`
}
