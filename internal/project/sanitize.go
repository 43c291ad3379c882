package project

import "strings"

// Sanitize normalizes a raw user-supplied name into a valid C++ identifier
// fragment: spaces become underscores and every character outside
// [A-Za-z0-9_] is dropped. It never fails; an all-invalid input degenerates
// to the empty string, which callers are expected to reject before storing.
// Sanitize is idempotent.
func Sanitize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}

	return b.String()
}
