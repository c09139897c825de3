// Package models defines data structures for range extraction.
package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Kind identifies which variant a CellValue holds.
type Kind int

const (
	// KindEmpty is an absent cell or a cell with no value.
	KindEmpty Kind = iota
	// KindText is a string value, including cached formula strings and error codes.
	KindText
	// KindNumber is a numeric value.
	KindNumber
	// KindBool is a boolean value.
	KindBool
	// KindDateTime is a date or time value.
	KindDateTime
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// CellValue is a single typed cell value. The zero value is an empty cell.
type CellValue struct {
	kind Kind
	text string
	num  float64
	b    bool
	t    time.Time
}

// Text returns a text cell value.
func Text(s string) CellValue {
	return CellValue{kind: KindText, text: s}
}

// Number returns a numeric cell value.
func Number(n float64) CellValue {
	return CellValue{kind: KindNumber, num: n}
}

// Bool returns a boolean cell value.
func Bool(b bool) CellValue {
	return CellValue{kind: KindBool, b: b}
}

// DateTime returns a date/time cell value.
func DateTime(t time.Time) CellValue {
	return CellValue{kind: KindDateTime, t: t}
}

// Kind returns the variant held by v.
func (v CellValue) Kind() Kind { return v.kind }

// IsEmpty reports whether v holds no value.
func (v CellValue) IsEmpty() bool { return v.kind == KindEmpty }

// Text returns the string payload and whether v is a text value.
func (v CellValue) Text() (string, bool) { return v.text, v.kind == KindText }

// Number returns the numeric payload and whether v is a number.
func (v CellValue) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Bool returns the boolean payload and whether v is a boolean.
func (v CellValue) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// DateTime returns the time payload and whether v is a date/time.
func (v CellValue) DateTime() (time.Time, bool) { return v.t, v.kind == KindDateTime }

// Value returns the payload as nil, string, float64, bool or time.Time.
func (v CellValue) Value() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindDateTime:
		return v.t
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same variant and payload.
func (v CellValue) Equal(o CellValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindDateTime:
		return v.t.Equal(o.t)
	default:
		return true
	}
}

// String renders v for plain-text output. Empty cells render as "".
func (v CellValue) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindDateTime:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}

// MarshalJSON encodes v as a JSON scalar, with empty cells as null.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindDateTime:
		return json.Marshal(v.t.Format(time.RFC3339))
	default:
		return json.Marshal(v.Value())
	}
}
