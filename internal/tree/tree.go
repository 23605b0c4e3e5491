// Package tree validates a tag record sequence, builds the element hierarchy
// from it and flattens that hierarchy into a table.
//
// Nodes live in an arena owned by the Tree and refer to each other through
// NodeID handles. Every traversal in this package uses an explicit stack, so
// deeply nested documents cannot exhaust the call stack.
package tree

import (
	"github.com/itsmostafa/svgflat/internal/markup"
)

// NodeID is a handle to a node inside its Tree.
type NodeID int

// NoNode marks a missing node, such as the parent of the root.
const NoNode NodeID = -1

// Node is one element of the hierarchy. Parent is a back reference only;
// ownership runs from a node to its Children.
type Node struct {
	Tag        string
	Attributes markup.Attributes
	Children   []NodeID
	Parent     NodeID
}

// Tree is an element hierarchy. The zero value is an empty tree.
type Tree struct {
	nodes    []Node
	root     NodeID
	set      bool
	replaced int
}

// Root returns the root node handle and whether the tree has one.
func (t *Tree) Root() (NodeID, bool) {
	if t == nil || !t.set {
		return NoNode, false
	}
	return t.root, true
}

// Empty reports whether the tree has no root.
func (t *Tree) Empty() bool {
	_, ok := t.Root()
	return !ok
}

// Node returns a copy of the node behind id. Callers that only view the tree
// cannot change it through the copy.
func (t *Tree) Node(id NodeID) Node {
	n := t.nodes[id]
	n.Children = append([]NodeID(nil), n.Children...)
	n.Attributes = append(markup.Attributes(nil), n.Attributes...)
	return n
}

// Tag returns the tag name of id.
func (t *Tree) Tag(id NodeID) string {
	return t.nodes[id].Tag
}

// Children returns the child handles of id in document order.
func (t *Tree) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), t.nodes[id].Children...)
}

// Visit is called once per reachable node during Walk. Returning false skips
// the node's children.
type Visit func(id NodeID, depth int) bool

// Walk traverses the tree in pre-order, children in document order.
func (t *Tree) Walk(fn Visit) {
	root, ok := t.Root()
	if !ok {
		return
	}

	type frame struct {
		id    NodeID
		depth int
	}

	stack := []frame{{id: root, depth: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(f.id, f.depth) {
			continue
		}

		// Push in reverse so the first child is popped first.
		children := t.nodes[f.id].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: children[i], depth: f.depth + 1})
		}
	}
}

// Size returns the number of nodes reachable from the root.
func (t *Tree) Size() int {
	n := 0
	t.Walk(func(NodeID, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of levels below the root, 0 for a lone root and
// -1 for an empty tree.
func (t *Tree) Depth() int {
	deepest := -1
	t.Walk(func(_ NodeID, depth int) bool {
		if depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}

func (t *Tree) add(record markup.TagRecord, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		Tag:        record.Name,
		Attributes: append(markup.Attributes(nil), record.Attributes...),
		Parent:     parent,
	})
	if parent != NoNode {
		t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	}
	return id
}

// ReplacedRoots returns how many times Build dropped an earlier root for a
// later top-level element.
func (t *Tree) ReplacedRoots() int {
	if t == nil {
		return 0
	}
	return t.replaced
}

func (t *Tree) setRoot(id NodeID) {
	if t.set {
		t.replaced++
	}
	t.root = id
	t.set = true
}
