package graph

import "strings"

// EscapeFilterValue escapes text content and file paths for use inside
// a quoted filter argument (drawtext text, fontfile paths).
//
// The function is total: every input string produces a valid escaped
// output, and every control character is mapped to a safe
// representation (a single space). A string containing no unsafe
// characters is returned unchanged, so escaping is idempotent for
// clean input.
//
// Escaped characters are the graph language's separators plus the
// quote and escape characters themselves: \ ' : , ; [ ] %
func EscapeFilterValue(s string) string {
	if !needsEscaping(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '\\', '\'', ':', ',', ';', '[', ']', '%':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteByte(' ')
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func needsEscaping(s string) bool {
	for _, r := range s {
		switch r {
		case '\\', '\'', ':', ',', ';', '[', ']', '%':
			return true
		}
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
