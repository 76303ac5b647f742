package encode

import (
	"cmp"
	"strings"

	"github.com/calibtools/a2ltext/ir"
)

// Blocks that must precede everything else so the rest of the
// document can be decoded: ASAP2_VERSION at the top level, A2ML ahead
// of any IF_DATA blocks that depend on it.
const (
	versionTag = "ASAP2_VERSION"
	a2mlTag    = "A2ML"
)

// compareTagged is the emission order of a group's children:
// version and type-schema blocks first, then included elements
// alphabetically by file, then elements in their original source
// order, then synthesized elements alphabetically by tag. Children it
// does not separate keep their append order (the sort is stable).
func compareTagged(a, b ir.Tagged) int {
	if a.Tag == versionTag || a.Tag == a2mlTag {
		return -1
	}
	if b.Tag == versionTag || b.Tag == a2mlTag {
		return 1
	}
	aInc, bInc := a.Node.File != "", b.Node.File != ""
	switch {
	case aInc && bInc:
		return strings.Compare(a.Node.File, b.Node.File)
	case aInc:
		return -1
	case bInc:
		return 1
	}
	al, bl := a.Node.Line.Num(), b.Node.Line.Num()
	switch {
	case al != 0 && bl != 0:
		return cmp.Compare(al, bl)
	case al != 0:
		return -1
	case bl != 0:
		return 1
	default:
		return strings.Compare(a.Tag, b.Tag)
	}
}
