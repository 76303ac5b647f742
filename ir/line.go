package ir

import "math"

type lineKind int

const (
	synthesized lineKind = iota
	fromSource
	forceBreak
)

// Line locates an item relative to the source document its tree was
// built from. Items loaded from a file carry their original line
// number, items created at runtime carry none, and force-break lines
// mark synthesized standalone keywords that must start a line of their
// own.
type Line struct {
	kind lineKind
	n    uint32
}

// SourceLine returns the Line for an item loaded from line n of a
// source document. Source lines are 1-based; n == 0 normalizes to a
// synthesized Line.
func SourceLine(n uint32) Line {
	if n == 0 {
		return Line{}
	}
	return Line{kind: fromSource, n: n}
}

// Synthesized returns the Line for an item created at runtime.
func Synthesized() Line {
	return Line{}
}

// ForceBreak returns the Line for a synthesized standalone keyword
// that must be separated from its neighbors by a line break.
func ForceBreak() Line {
	return Line{kind: forceBreak}
}

// FromSource reports whether the line was loaded from a source
// document.
func (l Line) FromSource() bool {
	return l.kind == fromSource
}

// Num returns the layout coordinate of the line: the source line
// number, 0 for synthesized items, and MaxUint32 for force-break
// items. Ordering and whitespace decisions compare these coordinates.
func (l Line) Num() uint32 {
	switch l.kind {
	case fromSource:
		return l.n
	case forceBreak:
		return math.MaxUint32
	default:
		return 0
	}
}
