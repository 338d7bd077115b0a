package aatree

import "iter"

// All yields every entry in ascending key order. The entry just yielded may
// be deleted from the loop body; no other mutation is allowed until the loop
// ends.
func (t *Tree[E, K]) All() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		t.ascendFrom(t.first)(yield)
	}
}

// Backward yields every entry in descending key order, with the same
// mutation rules as All.
func (t *Tree[E, K]) Backward() iter.Seq[*E] {
	return func(yield func(*E) bool) {
		t.descendFrom(t.last)(yield)
	}
}

// Ascend yields entries in ascending order starting at Search(key, order).
func (t *Tree[E, K]) Ascend(key K, order Order) iter.Seq[*E] {
	return func(yield func(*E) bool) {
		t.ascendFrom(t.Search(key, order))(yield)
	}
}

// Descend yields entries in descending order starting at Search(key, order).
func (t *Tree[E, K]) Descend(key K, order Order) iter.Seq[*E] {
	return func(yield func(*E) bool) {
		t.descendFrom(t.Search(key, order))(yield)
	}
}

func (t *Tree[E, K]) ascendFrom(start *E) iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for e := start; e != nil; {
			next := t.Next(e)
			if !yield(e) {
				return
			}
			e = next
		}
	}
}

func (t *Tree[E, K]) descendFrom(start *E) iter.Seq[*E] {
	return func(yield func(*E) bool) {
		for e := start; e != nil; {
			prev := t.Prev(e)
			if !yield(e) {
				return
			}
			e = prev
		}
	}
}
