package token

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"ident", "ident"},
		{"no specials at all", "no specials at all"},
		{`say "hi"`, `say \"hi\"`},
		{"it's", `it\'s`},
		{`back\slash`, `back\\slash`},
		{"a\nb", "a\\\nb"},
		{"a\tb", "a\\\tb"},
		{"'\"\\\n\t", "\\'\\\"\\\\\\\n\\\t"},
		{"héllo wörld", "héllo wörld"},
	}
	for _, c := range cases {
		if got := Escape(c.in); got != c.want {
			t.Errorf("Escape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEscapeIdempotentOnCleanInput(t *testing.T) {
	for _, v := range []string{"", "MEASUREMENT", "some description", "päth/to/thing", "0x1234"} {
		if got := Escape(v); got != v {
			t.Errorf("Escape(%q) = %q, want input unchanged", v, got)
		}
	}
}

func TestEscapeLength(t *testing.T) {
	for _, v := range []string{"", "plain", `a"b'c\d`, "x\ny\tz", "'\"\\\n\t"} {
		specials := 0
		for i := 0; i < len(v); i++ {
			if strings.IndexByte(escapeSet, v[i]) >= 0 {
				specials++
			}
		}
		if got := Escape(v); len(got) != len(v)+specials {
			t.Errorf("len(Escape(%q)) = %d, want %d", v, len(got), len(v)+specials)
		}
	}
}
