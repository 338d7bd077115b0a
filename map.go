package aatree

import (
	"cmp"
	"iter"
)

// mapEntry is the heap-allocated entry behind Map.
type mapEntry[K any, V any] struct {
	link  Node[mapEntry[K, V]]
	key   K
	value V
}

// Map is an ordered key/value map on top of Tree for callers that do not
// want to embed nodes themselves. Unlike Tree it allocates one entry per key.
type Map[K any, V any] struct {
	tree *Tree[mapEntry[K, V], K]
}

// NewMap creates an empty map ordered by cmp.
func NewMap[K any, V any](cmp func(a, b K) int, opts ...Option) *Map[K, V] {
	return &Map[K, V]{
		tree: New(
			func(e *mapEntry[K, V]) *Node[mapEntry[K, V]] { return &e.link },
			func(e *mapEntry[K, V]) K { return e.key },
			cmp,
			opts...,
		),
	}
}

// NewOrderedMap creates an empty map ordered by cmp.Compare.
func NewOrderedMap[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewMap[K, V](cmp.Compare[K], opts...)
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Set stores value under key. It returns the previous value and true if key
// was already present.
func (m *Map[K, V]) Set(key K, value V) (V, bool) {
	e := &mapEntry[K, V]{key: key, value: value}
	if existing := m.tree.Insert(e); existing != nil {
		old := existing.value
		existing.value = value
		return old, true
	}
	var zero V
	return zero, false
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.tree.Get(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Delete removes key and returns its value.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	e := m.tree.Get(key)
	if e == nil {
		var zero V
		return zero, false
	}
	m.tree.Delete(e)
	return e.value, true
}

// Search returns the key/value pair standing in the given order relation to
// key, see Tree.Search.
func (m *Map[K, V]) Search(key K, order Order) (K, V, bool) {
	return unpack(m.tree.Search(key, order))
}

// Floor returns the largest key less than or equal to key.
func (m *Map[K, V]) Floor(key K) (K, V, bool) {
	return m.Search(key, LE)
}

// Ceiling returns the smallest key greater than or equal to key.
func (m *Map[K, V]) Ceiling(key K) (K, V, bool) {
	return m.Search(key, GE)
}

// First returns the smallest key.
func (m *Map[K, V]) First() (K, V, bool) {
	return unpack(m.tree.First())
}

// Last returns the largest key.
func (m *Map[K, V]) Last() (K, V, bool) {
	return unpack(m.tree.Last())
}

// All yields every pair in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return pairs(m.tree.All())
}

// Backward yields every pair in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return pairs(m.tree.Backward())
}

// Ascend yields pairs in ascending order from Search(key, order) onward.
func (m *Map[K, V]) Ascend(key K, order Order) iter.Seq2[K, V] {
	return pairs(m.tree.Ascend(key, order))
}

// Verify checks the underlying tree, see Tree.Verify.
func (m *Map[K, V]) Verify() error {
	return m.tree.Verify()
}

func unpack[K any, V any](e *mapEntry[K, V]) (K, V, bool) {
	if e == nil {
		var (
			k K
			v V
		)
		return k, v, false
	}
	return e.key, e.value, true
}

func pairs[K any, V any](seq iter.Seq[*mapEntry[K, V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range seq {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
