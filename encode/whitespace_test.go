package encode

import (
	"math"
	"testing"
)

func TestSeparator(t *testing.T) {
	cases := []struct {
		name       string
		cur, item  uint32
		depth      int
		breakNew   bool
		allowBlank bool
		want       string
	}{
		{"same line", 5, 5, 0, false, false, " "},
		{"same line ignores depth", 5, 5, 3, false, false, " "},
		{"next line", 5, 6, 0, false, false, "\n"},
		{"next line indented", 5, 6, 2, false, false, "\n    "},
		{"gap keeps blank line", 5, 8, 0, false, true, "\n\n"},
		{"gap without blank lines", 5, 8, 0, false, false, "\n"},
		{"both synthesized", 0, 0, 1, false, true, "\n  "},
		{"force-break keywords", math.MaxUint32, math.MaxUint32, 0, true, false, "\n"},
		{"force-break without break context", math.MaxUint32, math.MaxUint32, 0, false, false, " "},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := separator(c.cur, c.item, c.depth, 2, c.breakNew, c.allowBlank)
			if got != c.want {
				t.Errorf("separator(%d, %d, %d, 2, %v, %v) = %q, want %q",
					c.cur, c.item, c.depth, c.breakNew, c.allowBlank, got, c.want)
			}
		})
	}
}

func TestSeparatorClampsIndent(t *testing.T) {
	got := separator(5, 6, 1000, 2, false, false)
	if len(got) != 1+maxPadCols {
		t.Errorf("clamped separator length = %d, want %d", len(got), 1+maxPadCols)
	}
	if got[0] != '\n' {
		t.Errorf("clamped separator does not start with newline: %q", got[:1])
	}
}

func TestSeparatorIndentWidth(t *testing.T) {
	if got := separator(5, 6, 2, 4, false, false); got != "\n        " {
		t.Errorf("width-4 separator = %q", got)
	}
}
