// SPDX-License-Identifier: MIT
// Package: percolation/gridgraph
//
// types.go — connectivity modes, options and the GridGraph type.

package gridgraph

import (
	"errors"

	"github.com/kurono/percolation/grid"
)

// ErrNilGrid indicates that New received a nil grid.
var ErrNilGrid = errors.New("gridgraph: grid is nil")

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// OpenThreshold is the minimum status considered open.
	OpenThreshold grid.Status
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns OpenThreshold=grid.Opened, Conn=Conn4, which matches
// the neighbourhood used by the percolation solver.
func DefaultOptions() Options {
	return Options{
		OpenThreshold: grid.Opened,
		Conn:          Conn4,
	}
}

// GridGraph is a read-only snapshot of a grid. Cells are row-major.
type GridGraph struct {
	Rows, Cols      int
	Cells           []grid.Status
	Conn            Connectivity
	OpenThreshold   grid.Status
	neighborOffsets [][2]int
}
