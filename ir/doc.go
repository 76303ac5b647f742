// Package ir provides the intermediate representation (IR) for A2L
// documents under construction.
//
// # Overview
//
// An A2L document is represented as a tree of nodes. Each Node owns an
// ordered list of items: static text fragments that are already fully
// rendered, groups of tagged child nodes, and break markers. Builders
// (typically a parser or a data model layer) construct the tree
// through the Node methods and GroupHandle, then hand the root to the
// encode package, which consumes it and produces the document text.
//
// # Line Provenance
//
// Every static item and node carries a Line recording where it came
// from. Items loaded from a source document keep their original line
// number; the layout engine uses these to reconstruct the original
// line breaks and blank lines. Items synthesized at runtime have no
// line and are laid out by fixed rules instead. ForceBreak lines mark
// synthesized standalone keywords that must begin a line of their own.
//
// # Ownership
//
// A tree has a single owner and no sharing between subtrees. Rendering
// consumes the tree: the encoder calls Take on every node it visits,
// and a taken node cannot be taken again. A GroupHandle is the only
// writer for its group; holding two handles to one group is a contract
// violation.
//
// # Building a Tree
//
//	root := ir.New("", ir.SourceLine(1))
//	grp := root.AddGroup(2)
//
//	prj := ir.New("", ir.SourceLine(2))
//	prj.AddStatic("MyProject", ir.SourceLine(2))
//	grp.Add("PROJECT", prj, true)
//
// # Related Packages
//
//   - github.com/calibtools/a2ltext/encode - render IR trees to text
//   - github.com/calibtools/a2ltext/token - scalar formatting helpers
package ir
