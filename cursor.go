package aatree

// Cursor provides ordered, bidirectional iteration over a tree. A cursor is
// positioned on an entry or invalid; stepping past either end invalidates it.
//
// The tree may only be mutated through Cursor.Delete while a cursor is in use.
type Cursor[E any, K any] struct {
	tree *Tree[E, K]
	cur  *E // nil when invalid
}

// Cursor returns an unpositioned cursor over t.
func (t *Tree[E, K]) Cursor() *Cursor[E, K] {
	return &Cursor[E, K]{tree: t}
}

// First positions the cursor at the smallest entry.
func (c *Cursor[E, K]) First() *E {
	c.cur = c.tree.first
	return c.cur
}

// Last positions the cursor at the largest entry.
func (c *Cursor[E, K]) Last() *E {
	c.cur = c.tree.last
	return c.cur
}

// Seek positions the cursor at Search(key, order).
// Seek(key, GE) is the usual start of a forward range scan.
func (c *Cursor[E, K]) Seek(key K, order Order) *E {
	c.cur = c.tree.Search(key, order)
	return c.cur
}

// Next advances to the following entry.
func (c *Cursor[E, K]) Next() *E {
	if c.cur != nil {
		c.cur = c.tree.Next(c.cur)
	}
	return c.cur
}

// Prev moves to the preceding entry.
func (c *Cursor[E, K]) Prev() *E {
	if c.cur != nil {
		c.cur = c.tree.Prev(c.cur)
	}
	return c.cur
}

// Entry returns the current entry, nil if the cursor is invalid.
func (c *Cursor[E, K]) Entry() *E {
	return c.cur
}

// Key returns the key of the current entry. The cursor must be valid.
func (c *Cursor[E, K]) Key() K {
	return c.tree.keyOf(c.cur)
}

// Valid reports whether the cursor is positioned on an entry.
func (c *Cursor[E, K]) Valid() bool {
	return c.cur != nil
}

// Delete removes the current entry from the tree and moves the cursor to its
// successor, which it returns. The removed entry is detached and owned by the
// caller again.
func (c *Cursor[E, K]) Delete() *E {
	if c.cur == nil {
		return nil
	}
	victim := c.cur
	c.cur = c.tree.Next(victim)
	c.tree.Delete(victim)
	return c.cur
}
