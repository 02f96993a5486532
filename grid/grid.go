// SPDX-License-Identifier: MIT
// Package: percolation/grid
//
// grid.go — construction, index mapping and cell accessors.

package grid

import (
	"fmt"
	"math"
)

// Grid is a rows×cols matrix of cell statuses kept in one row-major slice.
// Dimensions are fixed at construction; the grid is never resized.
type Grid struct {
	rows, cols int
	cells      []Status
}

// New returns a rows×cols grid with every cell Closed.
// Returns ErrInvalidDimensions if rows <= 0, cols <= 0 or rows×cols
// overflows int.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Status, rows*cols), // zero value is Closed
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellCount returns rows×cols.
func (g *Grid) CellCount() int { return len(g.cells) }

// Contains reports whether (row,col) lies inside the grid.
// Complexity: O(1).
func (g *Grid) Contains(row, col int) bool {
	return inRange(row, 0, g.rows-1) && inRange(col, 0, g.cols-1)
}

// Index maps (row,col) to the flat id cols*row + col.
// Returns ErrIndexOutOfRange for coordinates outside the grid.
func (g *Grid) Index(row, col int) (int, error) {
	if !g.Contains(row, col) {
		return 0, fmt.Errorf("cell (%d,%d) outside %dx%d: %w", row, col, g.rows, g.cols, ErrIndexOutOfRange)
	}

	return g.index(row, col), nil
}

// Coord maps a flat id back to (row,col).
// Returns ErrIndexOutOfRange for ids outside [0, CellCount()).
func (g *Grid) Coord(id int) (row, col int, err error) {
	if !inRange(id, 0, len(g.cells)-1) {
		return 0, 0, fmt.Errorf("id %d outside [0,%d): %w", id, len(g.cells), ErrIndexOutOfRange)
	}
	row, col = g.coord(id)

	return row, col, nil
}

// IndexClamped is Index with row and col pulled to the nearest valid value.
func (g *Grid) IndexClamped(row, col int) int {
	return g.index(constrain(row, 0, g.rows-1), constrain(col, 0, g.cols-1))
}

// CoordClamped is Coord with id pulled into [0, CellCount()).
func (g *Grid) CoordClamped(id int) (row, col int) {
	return g.coord(constrain(id, 0, len(g.cells)-1))
}

// Get returns the status of (row,col).
func (g *Grid) Get(row, col int) (Status, error) {
	id, err := g.Index(row, col)
	if err != nil {
		return Closed, err
	}

	return g.cells[id], nil
}

// Set stores s at (row,col).
// Returns ErrIndexOutOfRange or ErrInvalidStatus; the grid is unchanged on error.
func (g *Grid) Set(row, col int, s Status) error {
	if !s.Valid() {
		return fmt.Errorf("Set(%d,%d,%d): %w", row, col, int(s), ErrInvalidStatus)
	}
	id, err := g.Index(row, col)
	if err != nil {
		return err
	}
	g.cells[id] = s

	return nil
}

// At returns the status at flat id. The id is not checked.
func (g *Grid) At(id int) Status { return g.cells[id] }

// SetAt stores s at flat id. Neither id nor s is checked.
func (g *Grid) SetAt(id int, s Status) { g.cells[id] = s }

// Cells returns a copy of the row-major status slice.
func (g *Grid) Cells() []Status {
	out := make([]Status, len(g.cells))
	copy(out, g.cells)

	return out
}

// Row returns the flat ids of every cell in the given row, left to right.
func (g *Grid) Row(row int) ([]int, error) {
	if !inRange(row, 0, g.rows-1) {
		return nil, fmt.Errorf("row %d outside [0,%d): %w", row, g.rows, ErrIndexOutOfRange)
	}
	ids := make([]int, g.cols)
	for c := range ids {
		ids[c] = g.index(row, c)
	}

	return ids, nil
}

func (g *Grid) index(row, col int) int { return g.cols*row + col }

func (g *Grid) coord(id int) (row, col int) { return id / g.cols, id % g.cols }
