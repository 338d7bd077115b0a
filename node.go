package aatree

// Node is the intrusive link block of an AA tree. It is embedded in a
// caller-defined entry type E and never allocated by the tree. Links point at
// the neighbouring entries, so node-to-entry translation is free and the
// garbage collector sees ordinary pointers.
//
// A zero Node is detached and ready for insertion.
type Node[E any] struct {
	parent *E
	left   *E
	right  *E

	// height of the corresponding node in the 2-3 tree; 0 when detached
	level uint8
}

// Init resets n to the detached state. Delete does this already, so Init is
// only needed for nodes that were copied or never zeroed.
func (n *Node[E]) Init() {
	n.parent = nil
	n.left = nil
	n.right = nil
	n.level = 0
}

// Level returns the stored level: 1 for leaves, 0 when detached.
func (n *Node[E]) Level() int {
	return int(n.level)
}

// Attached reports whether n currently belongs to a tree.
func (n *Node[E]) Attached() bool {
	return n.level != 0
}

// Parent returns the parent entry, nil for the root or a detached node.
func (n *Node[E]) Parent() *E { return n.parent }

// Left returns the left child entry.
func (n *Node[E]) Left() *E { return n.left }

// Right returns the right child entry.
func (n *Node[E]) Right() *E { return n.right }
