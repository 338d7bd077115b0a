package aatree

import (
	"cmp"
	"errors"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	name  string
	id    uint32
	flags uint16
	link  Node[record]
}

func newRecordTree() *Tree[record, uint32] {
	return NewWithOffsets[record, uint32](
		unsafe.Offsetof(record{}.link),
		unsafe.Offsetof(record{}.id),
		cmp.Compare[uint32],
	)
}

func TestOffsetsTranslate(t *testing.T) {
	t.Parallel()

	tree := newRecordTree()
	r := &record{id: 7}

	assert.Same(t, &r.link, tree.Node(r))
	assert.Equal(t, uint32(7), tree.Key(r))
	r.id = 8
	assert.Equal(t, uint32(8), tree.Key(r))
}

func TestOffsetsTree(t *testing.T) {
	t.Parallel()

	tree := newRecordTree()
	recs := make([]record, 127)
	for i := range recs {
		recs[i].id = uint32(i)
	}
	for _, i := range rand.New(rand.NewSource(16)).Perm(len(recs)) {
		require.Nil(t, tree.Insert(&recs[i]))
	}
	require.NoError(t, tree.Verify())

	dup := &record{id: 42}
	assert.Same(t, &recs[42], tree.Insert(dup))

	for i := 0; i < len(recs); i += 2 {
		tree.Delete(&recs[i])
	}
	require.NoError(t, tree.Verify())

	assert.Same(t, &recs[41], tree.Search(42, LT))
	assert.Same(t, &recs[43], tree.Search(42, GE))
	assert.Same(t, &recs[1], tree.First())
	assert.Same(t, &recs[125], tree.Last())
}

func TestOffsetsRejectBadLayout(t *testing.T) {
	t.Parallel()

	nodeOff := unsafe.Offsetof(record{}.link)
	idOff := unsafe.Offsetof(record{}.id)
	size := unsafe.Sizeof(record{})

	tests := []struct {
		name      string
		node, key uintptr
	}{
		{"node_past_end", size, idOff},
		{"key_past_end", nodeOff, size},
		{"node_misaligned", nodeOff + 1, idOff},
		{"key_overlaps_node", nodeOff, nodeOff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, ErrOffset))
			}()
			NewWithOffsets[record, uint32](tt.node, tt.key, cmp.Compare[uint32])
		})
	}
}
