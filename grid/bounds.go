// SPDX-License-Identifier: MIT
// Package: percolation/grid
//
// bounds.go — generic range helpers.

package grid

import "golang.org/x/exp/constraints"

// inRange reports whether lo <= v <= hi.
func inRange[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// constrain pulls v into [lo, hi].
func constrain[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
