package xlrange

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist or cannot be opened.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidInput indicates a bad sheet name, column range, row bound or column letters.
var ErrInvalidInput = errors.New("invalid input")

// SheetNotFoundError reports a sheet name that is not in the workbook.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found. Available sheets: [%s]", e.Sheet, quoteJoin(e.Available))
}

func (e *SheetNotFoundError) Unwrap() error {
	return ErrInvalidInput
}

// ColumnRangeError reports an invalid 1-based column range.
type ColumnRangeError struct {
	Start int
	End   int
}

func (e *ColumnRangeError) Error() string {
	return fmt.Sprintf("invalid column range: start_column=%d, end_column=%d", e.Start, e.End)
}

func (e *ColumnRangeError) Unwrap() error {
	return ErrInvalidInput
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
