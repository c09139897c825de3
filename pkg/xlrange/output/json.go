// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
)

// ToJSON encodes a result as JSON.
func ToJSON(result *models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// SheetsToJSON encodes a sheet listing as JSON.
func SheetsToJSON(sheets []models.SheetInfo, pretty bool) ([]byte, error) {
	if sheets == nil {
		sheets = []models.SheetInfo{}
	}
	if pretty {
		return json.MarshalIndent(sheets, "", "  ")
	}
	return json.Marshal(sheets)
}
