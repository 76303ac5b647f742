package encode

import (
	"io"
	"slices"
	"strings"

	"github.com/calibtools/a2ltext/debug"
	"github.com/calibtools/a2ltext/ir"
)

// EncState carries the option state for one Encode call.
type EncState struct {
	indent int

	Color func(ColorAttr, string) string
}

// Encode renders the tree rooted at node and writes the resulting
// document to w. The tree is consumed: encoding takes every node it
// visits, so a second Encode of the same tree (or of any part of it)
// returns ir.ErrConsumed.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Layout() {
		debug.Logf("encode: root line %d, indent width %d\n", node.Line.Num(), es.indent)
	}
	_, text, err := encode(node, 0, es)
	if err != nil {
		return err
	}
	// Every item is emitted behind a separator, including the very
	// first one, which has no predecessor. Dropping that byte here is
	// simpler than special-casing its generation.
	if len(text) > 0 {
		text = text[1:]
	}
	_, err = io.WriteString(w, text)
	return err
}

// encode renders one node at the given depth and returns the line
// number of its last item together with its text. The line cursor
// starts at the node's own line; static items and groups move it as
// they are emitted.
func encode(node *ir.Node, depth int, es *EncState) (uint32, string, error) {
	items, err := node.Take()
	if err != nil {
		return 0, "", err
	}
	var (
		out          strings.Builder
		cur          = node.Line.Num()
		empty        = true
		pendingBreak = false
	)
	for i := range items {
		item := &items[i]
		switch item.Type {
		case ir.StaticItem:
			out.WriteString(separator(cur, item.Line.Num(), depth, es.indent, pendingBreak, false))
			out.WriteString(es.color(ValueColor, item.Text))
			pendingBreak = false
			cur = item.Line.Num()
		case ir.BreakItem:
			pendingBreak = true
		case ir.GroupItem:
			group := item.Group
			slices.SortStableFunc(group, compareTagged)
			if debug.Sort() {
				debug.Logf("encode: sorted group of %d at depth %d\n", len(group), depth)
			}
			last, text, err := encodeGroup(group, cur, depth, empty, es)
			if err != nil {
				return 0, "", err
			}
			out.WriteString(text)
			cur = last
		}
		empty = false
	}
	return cur, out.String(), nil
}

// encodeGroup renders the sorted children of one group. empty reports
// whether the enclosing node has emitted anything before this group;
// the flat-indent special case below only applies when it has not.
func encodeGroup(group []ir.Tagged, startLine uint32, depth int, empty bool, es *EncState) (uint32, string, error) {
	var (
		out      strings.Builder
		cur      = startLine
		included map[string]bool
	)
	for _, tg := range group {
		if tg.Node.File != "" {
			// Content stored in another file renders as a single
			// /include per distinct path; later duplicates are
			// skipped without advancing the cursor.
			if included[tg.Node.File] {
				continue
			}
			if included == nil {
				included = map[string]bool{}
			}
			included[tg.Node.File] = true
			out.WriteString(separator(cur, cur+1, depth, es.indent, true, true))
			out.WriteString(es.color(KeywordColor, "/include"))
			out.WriteString(" \"")
			out.WriteString(es.color(IncludeColor, tg.Node.File))
			out.WriteString("\"")
			cur++
			continue
		}
		out.WriteString(separator(cur, tg.Node.Line.Num(), depth, es.indent, true, tg.Block))
		// An opening tag sharing the line of its parent's opening tag
		// keeps the parent's indentation. The trigger is deliberately
		// narrow: it matches how hand-written IF_DATA blocks nest
		// their content, and nothing else.
		childDepth := depth + 1
		if empty && cur == tg.Node.Line.Num() && len(group) == 1 {
			childDepth = depth
		}
		last, body, err := encode(tg.Node, childDepth, es)
		if err != nil {
			return 0, "", err
		}
		cur = last
		if tg.Block {
			out.WriteString(es.color(KeywordColor, "/begin"))
			out.WriteString(" ")
		}
		out.WriteString(es.color(TagColor, tg.Tag))
		out.WriteString(body)
		if tg.Block {
			out.WriteString(separator(cur, cur+1, depth, es.indent, false, false))
			out.WriteString(es.color(KeywordColor, "/end"))
			out.WriteString(" ")
			out.WriteString(es.color(TagColor, tg.Tag))
			cur++
		}
	}
	return cur, out.String(), nil
}

func (es *EncState) color(a ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(a, v)
}
