package encode

import (
	"bytes"

	"github.com/calibtools/a2ltext/ir"
)

// MustString renders node to a string, panicking if the tree was
// already consumed.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
