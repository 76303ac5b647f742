// Package encode renders IR node trees to A2L document text.
//
// # Usage
//
//	root := ir.New("", ir.SourceLine(0))
//	grp := root.AddGroup(1)
//	// ... build the tree ...
//
//	var buf bytes.Buffer
//	err := encode.Encode(root, &buf)
//
// Encoding reconstructs a human-plausible layout from the line
// numbers carried by the tree: items that shared a source line stay
// on one line, gaps of more than one line keep a single blank line,
// and items synthesized at runtime are appended behind the original
// content in a deterministic order. Elements pulled in from include
// files render as one /include directive per distinct path.
//
// Encoding consumes the tree. A tree cannot be rendered twice.
//
// # Related Packages
//
//   - github.com/calibtools/a2ltext/ir - tree representation
//   - github.com/calibtools/a2ltext/token - scalar formatting helpers
package encode
