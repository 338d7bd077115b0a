// Package aatree implements an intrusive AA tree (Andersson tree): an ordered,
// self-balancing binary search tree that keeps a single level per node and
// restores balance with two rotations, skew and split.
//
// The tree never allocates. Callers embed a Node in their own entry type and
// describe, once, how to reach that node and the entry's key:
//
//	type timer struct {
//	    link     aatree.Node[timer]
//	    deadline int64
//	}
//
//	t := aatree.New(
//	    func(e *timer) *aatree.Node[timer] { return &e.link },
//	    func(e *timer) int64 { return e.deadline },
//	    cmp.Compare[int64],
//	)
//
// All queries return entry pointers. A Tree is not safe for concurrent use.
package aatree

import "fmt"

// Tree is an AA tree over caller-owned entries of type E keyed by K.
type Tree[E any, K any] struct {
	root  *E
	first *E
	last  *E
	size  int

	nodeOf func(*E) *Node[E]
	keyOf  func(*E) K
	cmp    func(a, b K) int

	opts options
}

// New creates an empty tree. nodeOf returns the Node embedded in an entry,
// keyOf returns its key and cmp orders keys, returning a negative, zero or
// positive value like cmp.Compare. An entry type may embed several nodes and
// be indexed by several trees at once, one node per tree.
func New[E any, K any](nodeOf func(*E) *Node[E], keyOf func(*E) K, cmp func(a, b K) int, opts ...Option) *Tree[E, K] {
	if nodeOf == nil || keyOf == nil || cmp == nil {
		panic("aatree: nil node accessor, key accessor or comparator")
	}

	t := &Tree[E, K]{
		nodeOf: nodeOf,
		keyOf:  keyOf,
		cmp:    cmp,
		opts:   defaultOptions(),
	}
	for _, opt := range opts {
		opt(&t.opts)
	}
	return t
}

// Node returns the link block embedded in e.
func (t *Tree[E, K]) Node(e *E) *Node[E] {
	return t.nodeOf(e)
}

// Key returns the key of e.
func (t *Tree[E, K]) Key(e *E) K {
	return t.keyOf(e)
}

// Len returns the number of entries in the tree.
func (t *Tree[E, K]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no entries.
func (t *Tree[E, K]) Empty() bool {
	return t.root == nil
}

// Root returns the root entry.
func (t *Tree[E, K]) Root() *E {
	return t.root
}

// First returns the entry with the smallest key in O(1).
func (t *Tree[E, K]) First() *E {
	return t.first
}

// Last returns the entry with the largest key in O(1).
func (t *Tree[E, K]) Last() *E {
	return t.last
}

// RootOf follows parent links from e to the root of whatever tree e is
// attached to. It returns nil for a detached entry.
func (t *Tree[E, K]) RootOf(e *E) *E {
	n := t.nodeOf(e)
	if n.level == 0 {
		return nil
	}
	for n.parent != nil {
		e = n.parent
		n = t.nodeOf(e)
	}
	return e
}

// Contains reports whether e is attached to t.
func (t *Tree[E, K]) Contains(e *E) bool {
	return t.root != nil && t.RootOf(e) == t.root
}

// Next returns the in-order successor of e, or nil if e is the last entry.
func (t *Tree[E, K]) Next(e *E) *E {
	n := t.nodeOf(e)
	if n.right != nil {
		e = n.right
		for l := t.nodeOf(e).left; l != nil; l = t.nodeOf(e).left {
			e = l
		}
		return e
	}

	// Climb until we leave a left subtree.
	for n.parent != nil {
		p := t.nodeOf(n.parent)
		if p.left == e {
			return n.parent
		}
		e = n.parent
		n = p
	}
	return nil
}

// Prev returns the in-order predecessor of e, or nil if e is the first entry.
func (t *Tree[E, K]) Prev(e *E) *E {
	n := t.nodeOf(e)
	if n.left != nil {
		e = n.left
		for r := t.nodeOf(e).right; r != nil; r = t.nodeOf(e).right {
			e = r
		}
		return e
	}

	for n.parent != nil {
		p := t.nodeOf(n.parent)
		if p.right == e {
			return n.parent
		}
		e = n.parent
		n = p
	}
	return nil
}

// derivedLevel is the level e should have given its children: one more than
// the lower child level, an absent child counting as 0.
func (t *Tree[E, K]) derivedLevel(e *E) uint8 {
	n := t.nodeOf(e)
	var l, r uint8
	if n.left != nil {
		l = t.nodeOf(n.left).level
	}
	if n.right != nil {
		r = t.nodeOf(n.right).level
	}
	return min(l, r) + 1
}

// replaceChild points the parent of old (or the root) at repl.
func (t *Tree[E, K]) replaceChild(parent, old, repl *E) {
	if parent == nil {
		t.root = repl
		return
	}
	p := t.nodeOf(parent)
	if p.left == old {
		p.left = repl
	} else {
		p.right = repl
	}
}

// Insert attaches e. If an entry with an equal key is already present the
// tree is left untouched and that entry is returned; otherwise Insert returns
// nil. e must be detached.
func (t *Tree[E, K]) Insert(e *E) *E {
	n := t.nodeOf(e)
	key := t.keyOf(e)

	if t.root == nil {
		n.Init()
		n.level = 1
		t.root = e
		t.first = e
		t.last = e
		t.size = 1
		t.check("insert")
		return nil
	}

	// Scan down the tree for the insert point.
	parent := t.root
	for {
		p := t.nodeOf(parent)
		c := t.cmp(key, t.keyOf(parent))
		if c == 0 {
			return parent
		}

		if c > 0 {
			if p.right == nil {
				p.right = e
				if parent == t.last {
					t.last = e
				}
				break
			}
			parent = p.right
		} else {
			if p.left == nil {
				p.left = e
				if parent == t.first {
					t.first = e
				}
				break
			}
			parent = p.left
		}
	}

	n.Init()
	n.level = 1
	n.parent = parent
	t.size++

	// Only the path to the new leaf grew; skew then split each ancestor.
	for ; parent != nil; parent = t.nodeOf(parent).parent {
		t.skew(parent)
		t.split(parent)
	}

	t.check("insert")
	return nil
}

// Delete detaches e from the tree and resets its node, after which e may be
// inserted again, into this or another tree. e must be attached to t.
func (t *Tree[E, K]) Delete(e *E) {
	n := t.nodeOf(e)
	var fix *E

	switch {
	case n.left == nil && n.right == nil:
		// Leaf.
		switch {
		case n.parent == nil:
			if t.root == e {
				t.root = nil
				t.first = nil
				t.last = nil
				t.size = 0
			}
		case t.nodeOf(n.parent).right == e:
			if t.last == e {
				t.last = n.parent
			}
			fix = n.parent
			t.nodeOf(fix).right = nil
		default:
			if t.first == e {
				t.first = n.parent
			}
			fix = n.parent
			t.nodeOf(fix).left = nil
		}

	case n.left == nil:
		// A lone child is always on the right: a lone left child would share
		// a level with its parent, which skew never leaves behind.
		child := n.right
		switch {
		case n.parent == nil:
			t.root = child
			t.first = child
			t.last = child
		case t.nodeOf(n.parent).right == e:
			t.nodeOf(n.parent).right = child
		default:
			if t.first == e {
				t.first = child
			}
			t.nodeOf(n.parent).left = child
		}
		fix = child
		t.nodeOf(fix).parent = n.parent

	default:
		// Two children: move the in-order successor into e's place.
		succ := n.right
		s := t.nodeOf(succ)

		if s.left == nil {
			fix = succ
			s.left = n.left
			t.nodeOf(n.left).parent = succ
		} else {
			for s.left != nil {
				succ = s.left
				s = t.nodeOf(succ)
			}

			fix = s.parent
			t.nodeOf(fix).left = s.right
			if s.right != nil {
				t.nodeOf(s.right).parent = fix
			}

			s.left = n.left
			t.nodeOf(n.left).parent = succ
			s.right = n.right
			t.nodeOf(n.right).parent = succ
		}

		t.replaceChild(n.parent, e, succ)
		s.parent = n.parent
		s.level = n.level
	}

	if fix != nil {
		t.size--
	}

	// Lower levels along the path, then skew and split the new levels.
	for ; fix != nil; fix = t.nodeOf(fix).parent {
		t.decreaseLevel(fix)
		t.skew(fix)

		f := t.nodeOf(fix)
		t.skew(f.right)
		if f.right != nil {
			t.skew(t.nodeOf(f.right).right)
		}
		t.split(fix)
		t.split(f.right)
	}

	n.Init()
	t.check("delete")
}

// check runs Verify after a mutation when invariant checks are enabled and
// panics on the first violation.
func (t *Tree[E, K]) check(op string) {
	if !t.opts.invariantChecks {
		return
	}
	if err := t.Verify(); err != nil {
		panic(fmt.Sprintf("aatree: after %s: %v", op, err))
	}
}
