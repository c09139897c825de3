package models

// Result bundles one extraction for serialization.
type Result struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheet is the sheet the range was read from.
	Sheet string `json:"sheet"`
	// Window is the scanned range after defaults were resolved.
	Window Window `json:"window"`
	// Table holds the kept rows.
	Table Table `json:"table"`
	// Addresses maps scanned cell addresses to table positions.
	Addresses AddressMap `json:"addresses"`
}
