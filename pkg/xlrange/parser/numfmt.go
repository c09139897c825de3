// Package parser provides range scanning over an open excelize workbook.
package parser

import "strings"

// builtInDateFormats lists the built-in number format ids that render dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	45: true, 46: true, 47: true,
}

// IsBuiltInDateFormat reports whether the built-in number format id is a date/time format.
func IsBuiltInDateFormat(id int) bool {
	return builtInDateFormats[id]
}

// IsDateFormat reports whether a custom number format code renders a date or time.
// Only the first section of the code is considered. Quoted literals, escaped
// characters, padding directives and bracketed colors or conditions are ignored;
// an elapsed-time bracket such as [h] or [mm] counts as a time token.
func IsDateFormat(code string) bool {
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch c {
		case ';':
			return false
		case '"':
			end := strings.IndexByte(code[i+1:], '"')
			if end < 0 {
				return false
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(code[i+1:], ']')
			if end < 0 {
				return false
			}
			if isElapsedToken(code[i+1 : i+1+end]) {
				return true
			}
			i += end + 1
		default:
			switch c | 0x20 {
			case 'd', 'm', 'y', 'h', 's':
				return true
			}
		}
	}
	return false
}

// isElapsedToken matches the inside of [h], [hh], [m], [mm], [s], [ss].
func isElapsedToken(tok string) bool {
	tok = strings.ToLower(tok)
	if tok == "" || len(tok) > 2 {
		return false
	}
	if tok[0] != 'h' && tok[0] != 'm' && tok[0] != 's' {
		return false
	}
	return len(tok) == 1 || tok[1] == tok[0]
}
