// Package xlrange extracts rectangular cell ranges from xlsx workbooks.
package xlrange

import "github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/parser"

// Options configures a range extraction.
type Options struct {
	// StartRow is the first row to read (1-based, inclusive). Zero means row 1.
	StartRow int
	// EndRow is the last row to read (1-based, inclusive). Zero means the
	// last row of the sheet holding data. Rows past the data read as empty.
	EndRow int
	// IncludeEmpty keeps rows whose requested cells are all empty.
	IncludeEmpty bool
	// OmitDroppedAddresses leaves cells of dropped empty rows out of the
	// address map. By default every scanned cell gets an entry.
	OmitDroppedAddresses bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{StartRow: 1}
}

// ResolveStartRow returns the effective first row.
func (o Options) ResolveStartRow() int {
	if o.StartRow == 0 {
		return 1
	}
	return o.StartRow
}

func (o Options) scanOptions() parser.ScanOptions {
	return parser.ScanOptions{
		IncludeEmpty:         o.IncludeEmpty,
		OmitDroppedAddresses: o.OmitDroppedAddresses,
	}
}
