// Package stress drives randomized workloads against an AA tree and checks
// every observable result against the google/btree reference model.
package stress

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"github.com/alexhholmes/aatree"
	"github.com/alexhholmes/aatree/internal/oracle"
)

// ErrDiverged is returned when the tree and the reference model disagree.
var ErrDiverged = errors.New("tree diverged from reference model")

// Drain selects how a round empties the tree.
type Drain int

const (
	DrainRoot   Drain = iota // repeatedly delete the root
	DrainFirst               // repeatedly delete the first entry
	DrainLast                // repeatedly delete the last entry
	DrainCursor              // sweep with Cursor.Delete
)

func (d Drain) String() string {
	switch d {
	case DrainRoot:
		return "root"
	case DrainFirst:
		return "first"
	case DrainLast:
		return "last"
	case DrainCursor:
		return "cursor"
	default:
		return "unknown"
	}
}

// Config describes a workload.
type Config struct {
	Count       int   // Number of distinct entries; keys are 0, 2, 4, ...
	Rounds      int   // Fill/churn/drain rounds.
	Ops         int   // Random insert/delete operations per round. 0 means 4*Count.
	Seed        int64 // Seed for the workload; equal seeds replay equal runs.
	VerifyEvery int   // Full check every N operations. 0 means only at round boundaries.
}

// DefaultConfig returns a workload that finishes in well under a second.
func DefaultConfig() Config {
	return Config{
		Count:       127,
		Rounds:      8,
		Seed:        1,
		VerifyEvery: 64,
	}
}

// Report summarizes a run.
type Report struct {
	Rounds     int
	Inserts    int
	Deletes    int
	Duplicates int
	Checks     int
	MaxLevel   int
}

type item struct {
	link aatree.Node[item]
	key  int
}

type runner struct {
	cfg    Config
	log    aatree.Logger
	rng    *rand.Rand
	items  []item
	tree   *aatree.Tree[item, int]
	model  *oracle.Model[int]
	report Report
}

// Run executes the workload described by cfg. It stops at the first
// divergence and returns the report so far together with an error wrapping
// ErrDiverged or aatree.ErrInvariant.
func Run(ctx context.Context, cfg Config, log aatree.Logger) (Report, error) {
	if cfg.Count <= 0 {
		return Report{}, fmt.Errorf("count must be positive, got %d", cfg.Count)
	}
	if cfg.Ops == 0 {
		cfg.Ops = 4 * cfg.Count
	}
	if log == nil {
		log = aatree.DiscardLogger{}
	}

	r := &runner{
		cfg:   cfg,
		log:   log,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		items: make([]item, cfg.Count),
		model: oracle.New(cmp.Compare[int]),
	}
	for i := range r.items {
		r.items[i].key = 2 * i
	}
	r.tree = aatree.New(
		func(e *item) *aatree.Node[item] { return &e.link },
		func(e *item) int { return e.key },
		cmp.Compare[int],
		aatree.WithLogger(log),
	)

	for round := 0; round < cfg.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return r.report, err
		}
		drain := Drain(round % 4)
		if err := r.round(drain); err != nil {
			log.Error("stress round failed", "round", round, "seed", cfg.Seed, "drain", drain.String(), "error", err)
			return r.report, fmt.Errorf("round %d: %w", round, err)
		}
		r.report.Rounds++
		log.Info("stress round done", "round", round, "drain", drain.String(),
			"inserts", r.report.Inserts, "deletes", r.report.Deletes, "max_level", r.report.MaxLevel)
	}
	return r.report, nil
}

func (r *runner) round(drain Drain) error {
	for _, i := range r.rng.Perm(len(r.items)) {
		if err := r.insert(&r.items[i]); err != nil {
			return err
		}
	}
	if err := r.check(); err != nil {
		return err
	}

	for op := 1; op <= r.cfg.Ops; op++ {
		it := &r.items[r.rng.Intn(len(r.items))]
		var err error
		if it.link.Attached() {
			err = r.delete(it)
		} else {
			err = r.insert(it)
		}
		if err != nil {
			return err
		}
		if r.cfg.VerifyEvery > 0 && op%r.cfg.VerifyEvery == 0 {
			if err := r.check(); err != nil {
				return err
			}
		}
	}
	if err := r.check(); err != nil {
		return err
	}

	if err := r.drain(drain); err != nil {
		return err
	}
	return r.check()
}

func (r *runner) insert(it *item) error {
	if got := r.tree.Insert(it); got != nil {
		return fmt.Errorf("%w: insert %d returned existing %d", ErrDiverged, it.key, got.key)
	}
	r.model.Insert(it.key)
	r.report.Inserts++

	// A second entry with the same key must bounce off the first.
	if r.rng.Intn(4) == 0 {
		dup := &item{key: it.key}
		if got := r.tree.Insert(dup); got != it {
			return fmt.Errorf("%w: duplicate %d not rejected", ErrDiverged, it.key)
		}
		if dup.link.Attached() {
			return fmt.Errorf("%w: rejected duplicate %d is attached", ErrDiverged, it.key)
		}
		r.report.Duplicates++
	}
	return nil
}

func (r *runner) delete(it *item) error {
	r.tree.Delete(it)
	r.model.Delete(it.key)
	r.report.Deletes++
	if it.link.Attached() || it.link.Parent() != nil || it.link.Left() != nil || it.link.Right() != nil {
		return fmt.Errorf("%w: deleted entry %d still linked", ErrDiverged, it.key)
	}
	return nil
}

func (r *runner) drain(d Drain) error {
	switch d {
	case DrainCursor:
		c := r.tree.Cursor()
		for e := c.First(); e != nil; {
			key := e.key
			e = c.Delete()
			r.model.Delete(key)
			r.report.Deletes++
		}
	default:
		for !r.tree.Empty() {
			var e *item
			switch d {
			case DrainRoot:
				e = r.tree.Root()
			case DrainFirst:
				e = r.tree.First()
			default:
				e = r.tree.Last()
			}
			if err := r.delete(e); err != nil {
				return err
			}
		}
	}

	if r.tree.Root() != nil || r.tree.First() != nil || r.tree.Last() != nil || r.tree.Len() != 0 {
		return fmt.Errorf("%w: tree not empty after %s drain", ErrDiverged, d)
	}
	for i := range r.items {
		if r.items[i].link.Attached() {
			return fmt.Errorf("%w: entry %d attached after drain", ErrDiverged, r.items[i].key)
		}
	}
	return nil
}

// check compares the full tree against the model.
func (r *runner) check() error {
	r.report.Checks++

	if err := r.tree.Verify(); err != nil {
		return err
	}
	if root := r.tree.Root(); root != nil {
		r.report.MaxLevel = max(r.report.MaxLevel, root.link.Level())
	}

	want := r.model.Keys()
	got := make([]int, 0, r.tree.Len())
	for e := range r.tree.All() {
		got = append(got, e.key)
	}
	if !slices.Equal(want, got) {
		return fmt.Errorf("%w: in-order keys differ (%d vs %d entries)", ErrDiverged, len(got), len(want))
	}

	back := make([]int, 0, r.tree.Len())
	for e := range r.tree.Backward() {
		back = append(back, e.key)
	}
	slices.Reverse(back)
	if !slices.Equal(want, back) {
		return fmt.Errorf("%w: reverse walk differs", ErrDiverged)
	}

	// Probes cover every stored key, every gap between keys and both ends.
	for key := -1; key <= 2*len(r.items); key++ {
		for _, order := range []aatree.Order{aatree.EQ, aatree.LT, aatree.LE, aatree.GT, aatree.GE} {
			if err := r.probe(key, order); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *runner) probe(key int, order aatree.Order) error {
	var (
		want int
		ok   bool
	)
	switch order {
	case aatree.EQ:
		want, ok = key, r.model.Has(key)
	case aatree.LT, aatree.LE:
		want, ok = r.model.Below(key, order == aatree.LE)
	case aatree.GT, aatree.GE:
		want, ok = r.model.Above(key, order == aatree.GE)
	}

	got := r.tree.Search(key, order)
	switch {
	case !ok && got != nil:
		return fmt.Errorf("%w: search(%d, %s) = %d, want none", ErrDiverged, key, order, got.key)
	case ok && got == nil:
		return fmt.Errorf("%w: search(%d, %s) = none, want %d", ErrDiverged, key, order, want)
	case ok && got.key != want:
		return fmt.Errorf("%w: search(%d, %s) = %d, want %d", ErrDiverged, key, order, got.key, want)
	}
	return nil
}
