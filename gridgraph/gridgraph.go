// SPDX-License-Identifier: MIT
// Package: percolation/gridgraph
//
// gridgraph.go — snapshot construction and coordinate helpers.

package gridgraph

import (
	"github.com/kurono/percolation/grid"
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// New takes a snapshot of g. Later changes to g are not observed.
// Returns ErrNilGrid if g is nil.
// Complexity: O(W×H) time and memory.
func New(g *grid.Grid, opts Options) (*GridGraph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Rows:            g.Rows(),
		Cols:            g.Cols(),
		Cells:           g.Cells(),
		Conn:            opts.Conn,
		OpenThreshold:   opts.OpenThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}

// NeighborOffsets returns the (row, col) steps for the configured connectivity.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// IsOpen reports whether the cell at flat index i counts as open.
func (gg *GridGraph) IsOpen(i int) bool {
	return gg.Cells[i] >= gg.OpenThreshold
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Cols, idx % gg.Cols
}

// index maps (row,col) to a row-major index.
func (gg *GridGraph) index(row, col int) int {
	return row*gg.Cols + col
}
