package aatree_test

import (
	"cmp"
	"fmt"

	"github.com/alexhholmes/aatree"
)

type timer struct {
	link     aatree.Node[timer]
	deadline int
	name     string
}

func Example() {
	timers := aatree.New(
		func(t *timer) *aatree.Node[timer] { return &t.link },
		func(t *timer) int { return t.deadline },
		cmp.Compare[int],
	)

	for _, t := range []*timer{
		{deadline: 30, name: "flush"},
		{deadline: 10, name: "ping"},
		{deadline: 20, name: "gc"},
	} {
		timers.Insert(t)
	}

	if existing := timers.Insert(&timer{deadline: 20, name: "dup"}); existing != nil {
		fmt.Println("already scheduled:", existing.name)
	}

	fmt.Println("next due:", timers.First().name)
	fmt.Println("due by 25:", timers.Search(25, aatree.LE).name)

	for t := range timers.All() {
		fmt.Println(t.deadline, t.name)
	}
	// Output:
	// already scheduled: gc
	// next due: ping
	// due by 25: gc
	// 10 ping
	// 20 gc
	// 30 flush
}

func ExampleMap() {
	m := aatree.NewOrderedMap[string, int]()
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)

	k, v, _ := m.Ceiling("bb")
	fmt.Println(k, v)
	// Output: c 3
}
