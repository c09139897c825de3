package output

import (
	"encoding/csv"
	"io"

	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
)

// WriteCSV writes one record per table row. Empty cells are written as "".
func WriteCSV(w io.Writer, table models.Table) error {
	writer := csv.NewWriter(w)
	for _, row := range table {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = v.String()
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
