package aatree

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/google/btree"
)

const benchCount = 1 << 14

func benchKeys() []int {
	return rand.New(rand.NewSource(99)).Perm(benchCount)
}

// Insert Benchmarks

func BenchmarkInsert_AATree(b *testing.B) {
	keys := benchKeys()
	nums := numbers(benchCount)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree := newNumberTree()
		for _, k := range keys {
			tree.Insert(&nums[k])
		}
		b.StopTimer()
		for j := range nums {
			nums[j].node.Init()
		}
		b.StartTimer()
	}
}

func BenchmarkInsert_BTree(b *testing.B) {
	keys := benchKeys()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree := btree.NewG[int](32, func(a, b int) bool { return a < b })
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
	}
}

// Search Benchmarks

func BenchmarkSearchGE_AATree(b *testing.B) {
	keys := benchKeys()
	nums := numbers(benchCount)
	tree := newNumberTree()
	fill(b, tree, nums, keys)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Search(keys[i%benchCount], GE)
	}
}

func BenchmarkSearchGE_BTree(b *testing.B) {
	keys := benchKeys()
	tree := btree.NewG[int](32, cmp.Less[int])
	for _, k := range keys {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.AscendGreaterOrEqual(keys[i%benchCount], func(int) bool { return false })
	}
}

// Churn Benchmarks

func BenchmarkChurn_AATree(b *testing.B) {
	keys := benchKeys()
	nums := numbers(benchCount)
	tree := newNumberTree()
	fill(b, tree, nums, keys)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		x := &nums[keys[i%benchCount]]
		tree.Delete(x)
		tree.Insert(x)
	}
}

func BenchmarkChurn_BTree(b *testing.B) {
	keys := benchKeys()
	tree := btree.NewG[int](32, cmp.Less[int])
	for _, k := range keys {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k := keys[i%benchCount]
		tree.Delete(k)
		tree.ReplaceOrInsert(k)
	}
}
