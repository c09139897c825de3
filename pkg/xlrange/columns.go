package xlrange

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ColumnNumber converts column letters such as "A" or "ab" to a 1-based
// column number.
func ColumnNumber(letters string) (int, error) {
	n, err := excelize.ColumnNameToNumber(letters)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return n, nil
}

// ColumnLetters converts a 1-based column number to its letters, e.g. 28 to "AB".
func ColumnLetters(n int) (string, error) {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return name, nil
}
