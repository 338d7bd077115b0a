package aatree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(seq func(func(*number) bool)) []int {
	var out []int
	for e := range seq {
		out = append(out, e.value)
	}
	return out
}

func TestAllAndBackward(t *testing.T) {
	t.Parallel()

	tree := newNumberTree()
	assert.Empty(t, values(tree.All()))
	assert.Empty(t, values(tree.Backward()))

	nums := numbers(20)
	fill(t, tree, nums, rand.New(rand.NewSource(13)).Perm(20))

	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, values(tree.All()))

	for i, j := 0, len(want)-1; i < j; i, j = i+1, j-1 {
		want[i], want[j] = want[j], want[i]
	}
	assert.Equal(t, want, values(tree.Backward()))
}

func TestAscendDescend(t *testing.T) {
	t.Parallel()

	tree := newNumberTree()
	nums := make([]number, 5)
	for i := range nums {
		nums[i].value = i * 2 // 0 2 4 6 8
	}
	fill(t, tree, nums, []int{2, 0, 4, 1, 3})

	assert.Equal(t, []int{4, 6, 8}, values(tree.Ascend(3, GE)))
	assert.Equal(t, []int{6, 8}, values(tree.Ascend(4, GT)))
	assert.Equal(t, []int{4, 6, 8}, values(tree.Ascend(4, EQ)))
	assert.Empty(t, values(tree.Ascend(9, GE)))

	assert.Equal(t, []int{2, 0}, values(tree.Descend(3, LE)))
	assert.Equal(t, []int{2, 0}, values(tree.Descend(4, LT)))
	assert.Empty(t, values(tree.Descend(0, LT)))
}

func TestIterBreak(t *testing.T) {
	t.Parallel()

	tree := newNumberTree()
	nums := numbers(10)
	fill(t, tree, nums, []int{5, 2, 8, 0, 9, 1, 3, 7, 4, 6})

	var got []int
	for e := range tree.All() {
		if e.value == 3 {
			break
		}
		got = append(got, e.value)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestIterDeleteYielded(t *testing.T) {
	t.Parallel()

	tree := newNumberTree()
	nums := numbers(40)
	fill(t, tree, nums, rand.New(rand.NewSource(14)).Perm(40))

	for e := range tree.Backward() {
		if e.value%3 != 0 {
			tree.Delete(e)
		}
	}
	require.NoError(t, tree.Verify())
	assert.Equal(t, []int{0, 3, 6, 9, 12, 15, 18, 21, 24, 27, 30, 33, 36, 39}, values(tree.All()))
}
