// Package oracle is a reference ordered set backed by google/btree. It answers
// the same neighbour queries as an AA tree by scanning instead of by
// structure, and exists so randomized tests and the stress command have an
// independent model to compare against.
package oracle

import "github.com/google/btree"

const degree = 8

// Model is an ordered set of keys.
type Model[K any] struct {
	tree *btree.BTreeG[K]
	cmp  func(a, b K) int
}

// New creates an empty model ordered by cmp.
func New[K any](cmp func(a, b K) int) *Model[K] {
	return &Model[K]{
		tree: btree.NewG[K](degree, func(a, b K) bool { return cmp(a, b) < 0 }),
		cmp:  cmp,
	}
}

// Insert adds key and reports whether it was absent.
func (m *Model[K]) Insert(key K) bool {
	_, replaced := m.tree.ReplaceOrInsert(key)
	return !replaced
}

// Delete removes key and reports whether it was present.
func (m *Model[K]) Delete(key K) bool {
	_, ok := m.tree.Delete(key)
	return ok
}

// Has reports whether key is present.
func (m *Model[K]) Has(key K) bool {
	return m.tree.Has(key)
}

// Len returns the number of keys.
func (m *Model[K]) Len() int {
	return m.tree.Len()
}

// Min returns the smallest key.
func (m *Model[K]) Min() (K, bool) {
	return m.tree.Min()
}

// Max returns the largest key.
func (m *Model[K]) Max() (K, bool) {
	return m.tree.Max()
}

// Keys returns every key in ascending order.
func (m *Model[K]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.tree.Ascend(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Below returns the largest key less than key, or less than or equal to it
// when inclusive is set.
func (m *Model[K]) Below(key K, inclusive bool) (K, bool) {
	var (
		found K
		ok    bool
	)
	m.tree.DescendLessOrEqual(key, func(k K) bool {
		if !inclusive && m.cmp(k, key) == 0 {
			return true
		}
		found, ok = k, true
		return false
	})
	return found, ok
}

// Above returns the smallest key greater than key, or greater than or equal
// to it when inclusive is set.
func (m *Model[K]) Above(key K, inclusive bool) (K, bool) {
	var (
		found K
		ok    bool
	)
	m.tree.AscendGreaterOrEqual(key, func(k K) bool {
		if !inclusive && m.cmp(k, key) == 0 {
			return true
		}
		found, ok = k, true
		return false
	})
	return found, ok
}
