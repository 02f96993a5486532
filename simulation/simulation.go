// Package simulation drives a percolation run: one random cell is opened per
// iteration until every cell is open (or, optionally, until the grid first
// percolates). After each opening the filled status of the grid is refreshed,
// a progress line is logged and the grid is optionally rendered to the
// console and exported as a PPM image.
package simulation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/kurono/percolation/config"
	"github.com/kurono/percolation/grid"
	"github.com/kurono/percolation/gridgraph"
	"github.com/kurono/percolation/percolation"
	"github.com/kurono/percolation/ppm"
	"github.com/kurono/percolation/render"
)

// ErrVerification is returned when the union-find answer disagrees with a
// breadth-first search over the same grid.
var ErrVerification = errors.New("simulation: union-find and traversal disagree")

// Report describes one iteration.
type Report struct {
	Iteration  int
	Row, Col   int // the cell opened in this iteration
	Opened     int // cells that are not closed
	Porosity   float64
	Percolates bool
}

// Summary describes a finished run.
type Summary struct {
	Iterations int
	Opened     int
	Porosity   float64
	Percolates bool
	// FirstPercolation is the iteration at which the grid first percolated, or -1.
	FirstPercolation int
	// Threshold is the porosity at FirstPercolation; an estimate of the
	// site-percolation threshold (≈0.593 on large square grids).
	Threshold float64
	Elapsed   time.Duration
}

// Simulation owns the grid and solver of one run.
type Simulation struct {
	cfg    config.Config
	log    *zap.Logger
	out    io.Writer
	grid   *grid.Grid
	solver *percolation.Solver
}

// New builds a Resolution×Resolution grid and its solver. Console output is
// written to out. Extra solver options are applied after the ones derived
// from cfg.
func New(cfg config.Config, log *zap.Logger, out io.Writer, opts ...percolation.Option) (*Simulation, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}

	g, err := grid.New(cfg.Resolution, cfg.Resolution)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	solverOpts := []percolation.Option{percolation.WithLogger(log)}
	if cfg.Seed != 0 {
		solverOpts = append(solverOpts, percolation.WithSeed(cfg.Seed))
	}
	s, err := percolation.New(g, append(solverOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	return &Simulation{cfg: cfg, log: log, out: out, grid: g, solver: s}, nil
}

// Grid returns the grid being simulated.
func (s *Simulation) Grid() *grid.Grid { return s.grid }

// Solver returns the underlying solver.
func (s *Simulation) Solver() *percolation.Solver { return s.solver }

// Step opens one random closed cell and refreshes the filled status.
// Returns percolation.ErrEmptyDomain once the grid is fully open.
func (s *Simulation) Step(iter int) (Report, error) {
	row, col, err := s.solver.OpenRandom(true)
	if err != nil {
		return Report{}, err
	}
	s.solver.RefreshFilledStatus()

	return Report{
		Iteration:  iter,
		Row:        row,
		Col:        col,
		Opened:     s.grid.CountWhere(grid.Closed, grid.Greater),
		Porosity:   s.grid.Porosity(),
		Percolates: s.solver.PercolatesTotally(),
	}, nil
}

// Run performs the whole simulation.
func (s *Simulation) Run() (Summary, error) {
	start := time.Now()
	sum := Summary{FirstPercolation: -1}

	image := s.cfg.Image
	if image {
		if err := os.MkdirAll(s.cfg.SavesDir, 0o755); err != nil {
			s.log.Warn("cannot create saves directory, image export disabled",
				zap.String("dir", s.cfg.SavesDir), zap.Error(err))
			image = false
		}
	}
	scale := ppm.ScaleFor(s.cfg.Resolution, s.cfg.ImageMinRes)

	if s.cfg.Console {
		s.log.Info("initial state of the cells")
		if err := render.Write(s.out, s.grid); err != nil {
			return sum, fmt.Errorf("simulation: %w", err)
		}
	}

	for iter, maxIter := 0, s.grid.CellCount(); iter < maxIter; iter++ {
		rep, err := s.Step(iter)
		if err != nil {
			return sum, fmt.Errorf("simulation: iteration %d: %w", iter, err)
		}
		sum.Iterations++
		sum.Opened = rep.Opened
		sum.Porosity = rep.Porosity
		sum.Percolates = rep.Percolates
		if rep.Percolates && sum.FirstPercolation < 0 {
			sum.FirstPercolation = iter
			sum.Threshold = rep.Porosity
		}

		s.log.Info("iteration",
			zap.Int("iter", iter),
			zap.Int("opened", rep.Opened),
			zap.String("porosity", fmt.Sprintf("%d%%", int(100*rep.Porosity))),
			zap.Bool("percolates", rep.Percolates))

		if err := s.inspect(rep); err != nil {
			return sum, err
		}
		if s.cfg.Console {
			if err := render.Write(s.out, s.grid); err != nil {
				return sum, fmt.Errorf("simulation: %w", err)
			}
		}
		if image {
			name := filepath.Join(s.cfg.SavesDir, fmt.Sprintf("%06d.ppm", iter))
			if err := ppm.WriteFile(name, ppm.FromGrid(s.grid, scale)); err != nil {
				return sum, fmt.Errorf("simulation: iteration %d: %w", iter, err)
			}
		}
		if s.cfg.StopOnPercolation && rep.Percolates {
			break
		}
	}

	sum.Elapsed = time.Since(start)
	s.log.Info("simulation finished",
		zap.Int("iterations", sum.Iterations),
		zap.Bool("percolates", sum.Percolates),
		zap.Int("first_percolation", sum.FirstPercolation),
		zap.Float64("threshold", sum.Threshold),
		zap.Duration("elapsed", sum.Elapsed))

	return sum, nil
}

// inspect runs the traversal-based checks requested by the configuration:
// the verify cross-check and, at debug level, the distance to percolation.
func (s *Simulation) inspect(rep Report) error {
	debug := s.log.Core().Enabled(zap.DebugLevel)
	if !s.cfg.Verify && !debug {
		return nil
	}
	gg, err := gridgraph.New(s.grid, gridgraph.DefaultOptions())
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if s.cfg.Verify {
		if spans := gg.Spans(); spans != rep.Percolates {
			return fmt.Errorf("iteration %d: union-find=%v traversal=%v: %w",
				rep.Iteration, rep.Percolates, spans, ErrVerification)
		}
	}
	if debug {
		_, cost := gg.MinOpenings()
		s.log.Debug("distance to percolation", zap.Int("iter", rep.Iteration), zap.Int("closed_cells", cost))
	}

	return nil
}
