package aatree

// Order selects which neighbour of a key Search returns.
type Order int

const (
	EQ Order = iota // key equal to
	LT              // nearest key strictly less than
	LE              // nearest key less than or equal to
	GT              // nearest key strictly greater than
	GE              // nearest key greater than or equal to
)

func (o Order) String() string {
	switch o {
	case EQ:
		return "EQ"
	case LT:
		return "LT"
	case LE:
		return "LE"
	case GT:
		return "GT"
	case GE:
		return "GE"
	default:
		return "Order(?)"
	}
}

// Search returns the entry whose key stands in the given order relation to
// key: the exact match for EQ, the nearest smaller key for LT/LE and the
// nearest larger key for GT/GE. It returns nil when no entry qualifies.
// Unknown orders behave like EQ.
func (t *Tree[E, K]) Search(key K, order Order) *E {
	switch order {
	case LT, LE:
		return t.findPredecessor(key, order == LE)
	case GT, GE:
		return t.findSuccessor(key, order == GE)
	default:
		return t.find(key)
	}
}

// Get returns the entry with the given key, or nil.
func (t *Tree[E, K]) Get(key K) *E {
	return t.find(key)
}

func (t *Tree[E, K]) find(key K) *E {
	e := t.root
	for e != nil {
		c := t.cmp(key, t.keyOf(e))
		switch {
		case c > 0:
			e = t.nodeOf(e).right
		case c < 0:
			e = t.nodeOf(e).left
		default:
			return e
		}
	}
	return nil
}

// findSuccessor returns the least entry greater than key, or greater than or
// equal to it when equal is set.
func (t *Tree[E, K]) findSuccessor(key K, equal bool) *E {
	e := t.root
	for e != nil {
		n := t.nodeOf(e)
		c := t.cmp(key, t.keyOf(e))
		switch {
		case c > 0:
			if n.right == nil {
				return t.Next(e)
			}
			e = n.right
		case c < 0:
			if n.left == nil {
				return e
			}
			e = n.left
		default:
			if equal {
				return e
			}
			return t.Next(e)
		}
	}
	return nil
}

// findPredecessor mirrors findSuccessor.
func (t *Tree[E, K]) findPredecessor(key K, equal bool) *E {
	e := t.root
	for e != nil {
		n := t.nodeOf(e)
		c := t.cmp(key, t.keyOf(e))
		switch {
		case c < 0:
			if n.left == nil {
				return t.Prev(e)
			}
			e = n.left
		case c > 0:
			if n.right == nil {
				return e
			}
			e = n.right
		default:
			if equal {
				return e
			}
			return t.Prev(e)
		}
	}
	return nil
}
