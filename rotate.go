package aatree

// skew removes a left horizontal link with a right rotation:
//
//	    N        L
//	   / \      / \
//	  L   R => A   N
//	 / \          / \
//	A   B        B   R
//
// It is a no-op unless e's left child shares e's level, so it can be applied
// unconditionally on the way up a modified path.
func (t *Tree[E, K]) skew(e *E) {
	if e == nil {
		return
	}
	n := t.nodeOf(e)
	if n.left == nil {
		return
	}
	left := n.left
	l := t.nodeOf(left)
	if l.level != n.level {
		return
	}

	n.left = l.right
	if n.left != nil {
		t.nodeOf(n.left).parent = e
	}

	l.right = e
	l.parent = n.parent
	n.parent = left

	t.replaceChild(l.parent, e, left)
}

// split removes two consecutive right horizontal links with a left rotation
// and promotes the middle node one level:
//
//	  N          R
//	 / \        / \
//	A   R  =>  N   X
//	   / \    / \
//	  B   X  A   B
func (t *Tree[E, K]) split(e *E) {
	if e == nil {
		return
	}
	n := t.nodeOf(e)
	if n.right == nil {
		return
	}
	right := n.right
	r := t.nodeOf(right)
	if r.right == nil || t.nodeOf(r.right).level != n.level {
		return
	}

	n.right = r.left
	if n.right != nil {
		t.nodeOf(n.right).parent = e
	}

	r.left = e
	r.parent = n.parent
	n.parent = right
	r.level++

	t.replaceChild(r.parent, e, right)
}

// decreaseLevel lowers e to the level its children imply after a removal,
// dragging a right child that sat on e's old level down with it.
func (t *Tree[E, K]) decreaseLevel(e *E) {
	n := t.nodeOf(e)
	should := t.derivedLevel(e)
	if n.level <= should {
		return
	}

	n.level = should
	if n.right != nil {
		if r := t.nodeOf(n.right); r.level > should {
			r.level = should
		}
	}
}
