// SPDX-License-Identifier: MIT
// Package: percolation
//
// solver.go — the Solver: opening cells and percolation queries.

package percolation

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/kurono/percolation/grid"
	"github.com/kurono/percolation/unionfind"
)

// neighbourOffsets are the orthogonal (row, col) steps: N, S, W, E.
var neighbourOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Solver tracks connectivity between the open cells of a grid.
// top and bottom are the virtual sentinel ids cellCount and cellCount+1;
// they never correspond to real cells.
type Solver struct {
	grid   *grid.Grid
	uf     *unionfind.DisjointSet
	top    int
	bottom int
	rng    RandSource
	log    *zap.Logger
}

// New builds a Solver over g. The grid is shared, not copied.
// Returns ErrNilGrid if g is nil.
// Complexity: O(rows×cols).
func New(g *grid.Grid, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := newSolverConfig(opts...)

	n := g.CellCount()
	if n > math.MaxInt-2 {
		return nil, fmt.Errorf("percolation: %d cells leave no room for sentinels: %w", n, grid.ErrInvalidDimensions)
	}
	uf, err := unionfind.New(n+2, unionfind.WithStrategy(cfg.strategy))
	if err != nil {
		return nil, fmt.Errorf("percolation: %w", err)
	}

	return &Solver{
		grid:   g,
		uf:     uf,
		top:    n,
		bottom: n + 1,
		rng:    cfg.rng,
		log:    cfg.log,
	}, nil
}

// Grid returns the grid the solver mutates.
func (s *Solver) Grid() *grid.Grid { return s.grid }

// Components returns the number of union-find components, sentinels included.
func (s *Solver) Components() int { return s.uf.Count() }

// IsOpen reports whether (row,col) is Opened or OpenedAndFilled.
func (s *Solver) IsOpen(row, col int) (bool, error) {
	st, err := s.grid.Get(row, col)
	if err != nil {
		return false, err
	}

	return st > grid.Closed, nil
}

// Open opens the cell at (row,col) and joins it with the sentinels and with
// its already-open orthogonal neighbours. Opening an open cell is a no-op.
// Returns grid.ErrIndexOutOfRange (wrapped) for coordinates outside the grid.
// Complexity: amortized O(α(n)).
func (s *Solver) Open(row, col int) error {
	id, err := s.grid.Index(row, col)
	if err != nil {
		return fmt.Errorf("Open: %w", err)
	}
	if s.grid.At(id) > grid.Closed {
		return nil
	}
	s.grid.SetAt(id, grid.Opened)

	// On a single-row grid both conditions hold.
	if row == 0 {
		s.union(id, s.top)
	}
	if row == s.grid.Rows()-1 {
		s.union(id, s.bottom)
	}

	for _, d := range neighbourOffsets {
		nid, err := s.grid.Index(row+d[0], col+d[1])
		if err != nil {
			continue // off the grid
		}
		if s.grid.At(nid) > grid.Closed {
			s.union(id, nid)
		}
	}

	return nil
}

// OpenRandom opens a uniformly chosen cell and returns its coordinates.
//
// With selectFromClosed the cell is drawn from the currently closed cells,
// so every call makes progress; ErrEmptyDomain is returned once none is left.
// Otherwise any (row,col) is drawn and Open may silently do nothing.
func (s *Solver) OpenRandom(selectFromClosed bool) (row, col int, err error) {
	if selectFromClosed {
		closed := s.grid.IndicesWhere(grid.Closed, grid.Equal)
		if len(closed) == 0 {
			return 0, 0, ErrEmptyDomain
		}
		if row, col, err = s.grid.Coord(closed[s.rng.Intn(len(closed))]); err != nil {
			return 0, 0, err
		}
	} else {
		row = s.rng.Intn(s.grid.Rows())
		col = s.rng.Intn(s.grid.Cols())
	}
	s.log.Debug("open cell", zap.Int("row", row), zap.Int("col", col))

	return row, col, s.Open(row, col)
}

// PercolatesTo reports whether the cell with flat id is connected to the top row.
func (s *Solver) PercolatesTo(id int) (bool, error) {
	if _, _, err := s.grid.Coord(id); err != nil {
		return false, fmt.Errorf("PercolatesTo: %w", err)
	}

	return s.connected(s.top, id), nil
}

// PercolatesToCell is PercolatesTo addressed by (row,col).
func (s *Solver) PercolatesToCell(row, col int) (bool, error) {
	id, err := s.grid.Index(row, col)
	if err != nil {
		return false, fmt.Errorf("PercolatesToCell: %w", err)
	}

	return s.connected(s.top, id), nil
}

// PercolatesTotally reports whether an open path joins the top and bottom rows.
// Complexity: amortized O(α(n)).
func (s *Solver) PercolatesTotally() bool {
	return s.connected(s.top, s.bottom)
}

// RefreshFilledStatus recomputes the displayed status of every cell: closed
// cells stay Closed, open cells become OpenedAndFilled when connected to the
// top sentinel and Opened otherwise.
// Complexity: O(rows×cols·α(n)).
func (s *Solver) RefreshFilledStatus() {
	for id, n := 0, s.grid.CellCount(); id < n; id++ {
		if s.grid.At(id) == grid.Closed {
			continue
		}
		if s.connected(s.top, id) {
			s.grid.SetAt(id, grid.OpenedAndFilled)
		} else {
			s.grid.SetAt(id, grid.Opened)
		}
	}
}

// union and connected are only called with ids the solver derived itself, all
// inside [0, cellCount+2), so the range errors cannot occur.
func (s *Solver) union(p, q int) {
	_, _ = s.uf.Union(p, q)
}

func (s *Solver) connected(p, q int) bool {
	ok, _ := s.uf.Connected(p, q)

	return ok
}
