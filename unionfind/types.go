// SPDX-License-Identifier: MIT
// Package: percolation/unionfind
//
// types.go — strategies, options and sentinel errors.

package unionfind

import "errors"

// ErrInvalidSize indicates that a DisjointSet was requested for n <= 0 elements.
var ErrInvalidSize = errors.New("unionfind: size must be positive")

// ErrIndexOutOfRange indicates an element index outside [0, n).
var ErrIndexOutOfRange = errors.New("unionfind: index out of range")

// Strategy selects the find/union policy of a DisjointSet.
type Strategy int

const (
	// Weighted attaches the smaller tree under the larger and halves paths in Find.
	Weighted Strategy = iota
	// QuickUnion halves paths in Find but attaches p's root under q's root unconditionally.
	QuickUnion
	// QuickFind stores the component label of every element directly.
	QuickFind
)

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case Weighted:
		return "weighted"
	case QuickUnion:
		return "quick-union"
	case QuickFind:
		return "quick-find"
	default:
		return "unknown"
	}
}

// Option customizes a DisjointSet at construction time.
type Option func(*options)

type options struct {
	strategy Strategy
}

// WithStrategy selects the find/union policy. Unknown values fall back to Weighted.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

func newOptions(opts ...Option) options {
	o := options{strategy: Weighted}
	for _, opt := range opts {
		opt(&o)
	}
	if o.strategy < Weighted || o.strategy > QuickFind {
		o.strategy = Weighted
	}

	return o
}
