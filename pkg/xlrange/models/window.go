package models

// Window represents the cell bounds scanned by an extraction.
type Window struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Rows returns the number of rows in the window, or 0 when it is empty.
func (w Window) Rows() int {
	if w.R2 < w.R1 {
		return 0
	}
	return w.R2 - w.R1 + 1
}

// Cols returns the number of columns in the window, or 0 when it is empty.
func (w Window) Cols() int {
	if w.C2 < w.C1 {
		return 0
	}
	return w.C2 - w.C1 + 1
}
