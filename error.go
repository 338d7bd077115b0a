package aatree

import (
	"errors"
	"fmt"
)

// ErrInvariant is the root of every error reported by Verify.
var ErrInvariant = errors.New("aatree: invariant violated")

//goland:noinspection GoUnusedGlobalVariable
var (
	ErrOrder   = fmt.Errorf("%w: key order", ErrInvariant)
	ErrParent  = fmt.Errorf("%w: parent link", ErrInvariant)
	ErrLevel   = fmt.Errorf("%w: level", ErrInvariant)
	ErrExtrema = fmt.Errorf("%w: first/last", ErrInvariant)
	ErrSize    = fmt.Errorf("%w: size", ErrInvariant)

	ErrOffset = errors.New("aatree: offset outside entry")
)
