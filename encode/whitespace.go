package encode

import "math"

// maxPadCols bounds indentation so separators can always be served as
// slices of the fixed padding constant instead of being allocated per
// call. Real documents never nest anywhere near this deep.
const maxPadCols = 120

// sepPad is two newlines followed by maxPadCols spaces. Separators
// are slices of it.
const sepPad = "\n\n                                                                                                                        "

// separator computes the whitespace between a previous token on
// currentLine and the next token on itemLine, at the given depth and
// indent width.
//
// Tokens sharing a source line are separated by a single space. A gap
// of exactly one line, or two items with no source line at all,
// produces a newline plus indentation, as does any gap in a context
// that does not allow blank lines. A larger gap keeps one blank line.
// breakNew forces the newline rules onto force-break items, whose
// line coordinates otherwise compare equal to their neighbor's.
func separator(currentLine, itemLine uint32, depth, width int, breakNew, allowBlank bool) string {
	mustBreak := breakNew && currentLine == itemLine && currentLine == math.MaxUint32
	cols := depth * width
	if cols > maxPadCols {
		cols = maxPadCols
	}
	switch {
	case currentLine != 0 && currentLine == itemLine && !mustBreak:
		return " "
	case itemLine == currentLine+1 || (currentLine == 0 && itemLine == 0) || !allowBlank:
		return sepPad[1 : cols+2]
	default:
		return sepPad[: cols+2]
	}
}
