package aatree

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest returns an xxhash fingerprint of the tree's shape. The in-order
// sequence of keys together with each entry's depth and level determines the
// tree uniquely, so two trees with equal digests hold the same keys in the
// same structure. encode appends the byte form of a key to dst.
func (t *Tree[E, K]) Digest(encode func(dst []byte, key K) []byte) uint64 {
	d := xxhash.New()

	var buf []byte
	for e := t.first; e != nil; e = t.Next(e) {
		depth := 0
		for p := t.nodeOf(e).parent; p != nil; p = t.nodeOf(p).parent {
			depth++
		}

		buf = encode(buf[:0], t.keyOf(e))
		buf = binary.AppendUvarint(buf, uint64(depth))
		buf = append(buf, t.nodeOf(e).level)
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
