package token

import "strings"

const escapeSet = "'\"\\\n\t"

// Escape returns v with a backslash inserted before every quote,
// double quote, backslash, newline, and tab. Escaping allocates, so
// scan first; most strings come back unchanged.
func Escape(v string) string {
	if !strings.ContainsAny(v, escapeSet) {
		return v
	}
	var b strings.Builder
	b.Grow(len(v) + 8)
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '\'', '"', '\\', '\n', '\t':
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
