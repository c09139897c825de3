package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/KcCheng1988/auto-eval-dbs/pkg/xlrange/models"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/xuri/excelize/v2"
)

// CellRecord is one Parquet row: a scanned cell address, its table position
// and its value. Only the payload column matching Kind is set.
type CellRecord struct {
	Address    string   `parquet:"address"`
	Row        int32    `parquet:"row"`
	Col        int32    `parquet:"col"`
	Kind       string   `parquet:"kind"`
	Text       *string  `parquet:"text,optional"`
	Number     *float64 `parquet:"number,optional"`
	Bool       *bool    `parquet:"bool,optional"`
	TimeMillis *int64   `parquet:"time_millis,optional"`
}

// Records flattens a result into one CellRecord per address, sorted by
// table position then address.
//
// Cells of dropped rows share a position with the next kept row, or point
// past the table. Of the addresses sharing a position only the one with the
// highest sheet row owns the table value; the others are written as empty.
func Records(result *models.Result) []CellRecord {
	owners := make(map[models.Position]int, len(result.Addresses))
	for addr, pos := range result.Addresses {
		if _, row, err := excelize.CellNameToCoordinates(addr); err == nil && row > owners[pos] {
			owners[pos] = row
		}
	}

	records := make([]CellRecord, 0, len(result.Addresses))
	for addr, pos := range result.Addresses {
		rec := CellRecord{
			Address: addr,
			Row:     int32(pos.Row),
			Col:     int32(pos.Col),
			Kind:    models.KindEmpty.String(),
		}
		_, row, err := excelize.CellNameToCoordinates(addr)
		if v, ok := cellAt(result.Table, pos); ok && err == nil && row == owners[pos] {
			setValue(&rec, v)
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		return a.Address < b.Address
	})
	return records
}

// WriteParquet writes the result's records with ZSTD compression.
func WriteParquet(w io.Writer, result *models.Result) error {
	writer := parquet.NewGenericWriter[CellRecord](w,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedDefault}),
	)

	if _, err := writer.Write(Records(result)); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

func cellAt(table models.Table, pos models.Position) (models.CellValue, bool) {
	if pos.Row < 0 || pos.Row >= len(table) {
		return models.CellValue{}, false
	}
	row := table[pos.Row]
	if pos.Col < 0 || pos.Col >= len(row) {
		return models.CellValue{}, false
	}
	return row[pos.Col], true
}

func setValue(rec *CellRecord, v models.CellValue) {
	rec.Kind = v.Kind().String()
	switch v.Kind() {
	case models.KindText:
		s, _ := v.Text()
		rec.Text = &s
	case models.KindNumber:
		n, _ := v.Number()
		rec.Number = &n
	case models.KindBool:
		b, _ := v.Bool()
		rec.Bool = &b
	case models.KindDateTime:
		t, _ := v.DateTime()
		ms := t.UnixMilli()
		rec.TimeMillis = &ms
	}
}
