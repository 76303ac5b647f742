package ir

// Node owns one subtree of a document under construction. File holds
// the path of the include file the node came from; the empty string
// means the node belongs to the document currently being rendered.
type Node struct {
	File string
	Line Line

	items []Item
	done  bool
}

type ItemType int

const (
	StaticItem ItemType = iota
	GroupItem
	BreakItem
)

// Item is one entry in a node's ordered item list. It works as a
// tagged union: Line and Text are set for StaticItem, Group for
// GroupItem, and BreakItem carries nothing.
type Item struct {
	Type  ItemType
	Line  Line
	Text  string
	Group []Tagged
}

// Tagged is one child of a group: the tag labeling the child, the
// child's subtree, and whether the child renders as a /begin../end
// block or as an inline element.
type Tagged struct {
	Tag   string
	Node  *Node
	Block bool
}

func New(file string, line Line) *Node {
	return &Node{
		File: file,
		Line: line,
	}
}

// AddStatic appends a leaf already rendered to text, tagged with the
// line it occupied in its origin document.
func (n *Node) AddStatic(text string, line Line) {
	n.items = append(n.items, Item{
		Type: StaticItem,
		Line: line,
		Text: text,
	})
}

// AddBreak records a forced break before the next item, but only when
// line is not from a source document. Items with a real source line
// get their separation from line arithmetic alone.
func (n *Node) AddBreak(line Line) {
	if line.FromSource() {
		return
	}
	n.items = append(n.items, Item{Type: BreakItem})
}

// AddGroup appends an empty group and returns the handle used to fill
// it. The handle is the only writer for that group; callers must not
// create a second handle for the same group.
func (n *Node) AddGroup(sizeHint int) *GroupHandle {
	n.items = append(n.items, Item{
		Type:  GroupItem,
		Group: make([]Tagged, 0, sizeHint),
	})
	return &GroupHandle{
		owner: n,
		idx:   len(n.items) - 1,
	}
}

// Take returns the node's items and marks the node consumed. A node
// can be taken exactly once; rendering takes every node it visits, so
// no subtree can be rendered twice. After Take the node retains no
// items.
func (n *Node) Take() ([]Item, error) {
	if n.done {
		return nil, ErrConsumed
	}
	n.done = true
	items := n.items
	n.items = nil
	return items, nil
}

// GroupHandle is the exclusive append-only view into one group of its
// owning node.
type GroupHandle struct {
	owner *Node
	idx   int
}

// Add appends a tagged child to the handle's group.
func (h *GroupHandle) Add(tag string, node *Node, block bool) {
	g := &h.owner.items[h.idx]
	g.Group = append(g.Group, Tagged{
		Tag:   tag,
		Node:  node,
		Block: block,
	})
}
