package aatree

import "fmt"

// Verify walks the whole tree and checks every structural invariant: parent
// links, strictly increasing keys under the comparator in both directions,
// AA level rules, stored levels matching the levels implied by the children,
// the cached first and last entries, the size counter, and that the root
// carries the highest level. It returns the first violation found, wrapped
// around one of the ErrInvariant sentinels.
//
// Verify is O(n) and meant for tests and debugging.
func (t *Tree[E, K]) Verify() error {
	err := t.verify()
	if err != nil {
		t.opts.logger.Error("aatree verify failed", "error", err, "size", t.size)
	}
	return err
}

func (t *Tree[E, K]) verify() error {
	if t.root == nil {
		if t.first != nil || t.last != nil {
			return fmt.Errorf("%w: empty tree caches first/last", ErrExtrema)
		}
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree has size %d", ErrSize, t.size)
		}
		return nil
	}
	if t.first == nil || t.last == nil {
		return fmt.Errorf("%w: non-empty tree without first/last", ErrExtrema)
	}
	if t.nodeOf(t.root).parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrParent)
	}

	// first must be reached from the root by left links only.
	var prev *E
	for e := t.first; e != nil; e = t.nodeOf(e).parent {
		n := t.nodeOf(e)
		if n.left != prev {
			return fmt.Errorf("%w: first is not the leftmost entry", ErrExtrema)
		}
		if n.parent == e || n.left == e {
			return fmt.Errorf("%w: entry links to itself", ErrParent)
		}
		prev = e
	}
	if prev != t.root {
		return fmt.Errorf("%w: first does not lead to the root", ErrExtrema)
	}

	var (
		maxLevel uint8
		maxEntry *E
		count    int
		e        = t.first
	)
	for {
		count++
		if count > t.size {
			return fmt.Errorf("%w: walked more than %d entries", ErrSize, t.size)
		}
		if err := t.verifyEntry(e); err != nil {
			return err
		}

		n := t.nodeOf(e)
		if n.level > maxLevel {
			maxLevel = n.level
			maxEntry = e
		}

		next := t.Next(e)
		if next == nil {
			break
		}
		if t.cmp(t.keyOf(e), t.keyOf(next)) >= 0 || t.cmp(t.keyOf(next), t.keyOf(e)) <= 0 {
			return fmt.Errorf("%w: %v is not below its successor %v", ErrOrder, t.keyOf(e), t.keyOf(next))
		}
		e = next
	}

	if e != t.last {
		return fmt.Errorf("%w: walk ended before last", ErrExtrema)
	}
	if count != t.size {
		return fmt.Errorf("%w: walked %d entries, size is %d", ErrSize, count, t.size)
	}
	if maxEntry != t.root {
		return fmt.Errorf("%w: root does not carry the maximum level %d", ErrLevel, maxLevel)
	}
	return nil
}

// verifyEntry checks the local invariants of a single attached entry.
func (t *Tree[E, K]) verifyEntry(e *E) error {
	n := t.nodeOf(e)
	if n.level == 0 {
		return fmt.Errorf("%w: attached entry %v has level 0", ErrLevel, t.keyOf(e))
	}
	if n.parent == nil && e != t.root {
		return fmt.Errorf("%w: entry %v has no parent but is not the root", ErrParent, t.keyOf(e))
	}
	if want := t.derivedLevel(e); n.level != want {
		return fmt.Errorf("%w: entry %v has level %d, children imply %d", ErrLevel, t.keyOf(e), n.level, want)
	}
	if n.level > 1 && (n.left == nil || n.right == nil) {
		return fmt.Errorf("%w: entry %v at level %d lacks a child", ErrLevel, t.keyOf(e), n.level)
	}

	if n.left != nil {
		l := t.nodeOf(n.left)
		if l.parent != e {
			return fmt.Errorf("%w: left child of %v points elsewhere", ErrParent, t.keyOf(e))
		}
		if l.level >= n.level {
			return fmt.Errorf("%w: left horizontal link at %v", ErrLevel, t.keyOf(e))
		}
	}
	if n.right != nil {
		r := t.nodeOf(n.right)
		if r.parent != e {
			return fmt.Errorf("%w: right child of %v points elsewhere", ErrParent, t.keyOf(e))
		}
		if r.level > n.level {
			return fmt.Errorf("%w: right child of %v is above it", ErrLevel, t.keyOf(e))
		}
		if r.right != nil && t.nodeOf(r.right).level >= n.level {
			return fmt.Errorf("%w: two right horizontal links at %v", ErrLevel, t.keyOf(e))
		}
	}
	return nil
}
