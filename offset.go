package aatree

import (
	"fmt"
	"unsafe"
)

// NewWithOffsets creates an empty tree that locates the node and key inside
// an entry by byte offset, typically obtained with unsafe.Offsetof:
//
//	type number struct {
//	    link  aatree.Node[number]
//	    value int
//	}
//
//	t := aatree.NewWithOffsets[number, int](
//	    unsafe.Offsetof(number{}.link),
//	    unsafe.Offsetof(number{}.value),
//	    cmp.Compare[int],
//	)
//
// The offsets are checked once against the layout of E; it panics with
// ErrOffset if either field would fall outside the entry, is misaligned, or if
// the two overlap.
func NewWithOffsets[E any, K any](nodeOffset, keyOffset uintptr, cmp func(a, b K) int, opts ...Option) *Tree[E, K] {
	var (
		entry E
		node  Node[E]
		key   K
	)
	size := unsafe.Sizeof(entry)
	nodeSize, keySize := unsafe.Sizeof(node), unsafe.Sizeof(key)

	switch {
	case nodeOffset+nodeSize > size || nodeOffset%unsafe.Alignof(node) != 0:
		panic(fmt.Errorf("%w: node at %d does not fit a %d-byte entry", ErrOffset, nodeOffset, size))
	case keyOffset+keySize > size || keyOffset%unsafe.Alignof(key) != 0:
		panic(fmt.Errorf("%w: key at %d does not fit a %d-byte entry", ErrOffset, keyOffset, size))
	case keyOffset < nodeOffset+nodeSize && nodeOffset < keyOffset+keySize:
		panic(fmt.Errorf("%w: key at %d overlaps node at %d", ErrOffset, keyOffset, nodeOffset))
	}

	return New(
		func(e *E) *Node[E] {
			return (*Node[E])(unsafe.Add(unsafe.Pointer(e), nodeOffset))
		},
		func(e *E) K {
			return *(*K)(unsafe.Add(unsafe.Pointer(e), keyOffset))
		},
		cmp,
		opts...,
	)
}
