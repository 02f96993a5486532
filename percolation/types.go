// SPDX-License-Identifier: MIT
// Package: percolation
//
// types.go — options, random source and sentinel errors.

package percolation

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/kurono/percolation/unionfind"
)

var (
	// ErrNilGrid is returned by New when the grid is nil.
	ErrNilGrid = errors.New("percolation: grid is nil")
	// ErrEmptyDomain is returned by OpenRandom(true) when no closed cell is left.
	ErrEmptyDomain = errors.New("percolation: no closed cells left")
)

// RandSource draws uniform integers in [0, n). *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// globalRand draws from the process-wide math/rand generator, which is
// seeded from entropy at start-up.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Option configures a Solver.
type Option func(*solverConfig)

type solverConfig struct {
	rng      RandSource
	log      *zap.Logger
	strategy unionfind.Strategy
}

func newSolverConfig(opts ...Option) solverConfig {
	cfg := solverConfig{
		rng:      globalRand{},
		log:      zap.NewNop(),
		strategy: unionfind.Weighted,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand injects the random source used by OpenRandom. Panics on nil.
func WithRand(r RandSource) Option {
	if r == nil {
		panic("percolation: WithRand(nil)")
	}
	return func(c *solverConfig) {
		c.rng = r
	}
}

// WithSeed makes OpenRandom reproducible.
func WithSeed(seed int64) Option {
	return func(c *solverConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger installs a logger for debug output. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("percolation: WithLogger(nil)")
	}
	return func(c *solverConfig) {
		c.log = log
	}
}

// WithStrategy selects the union-find policy. Weighted is the default and the
// only one with near-constant amortized cost.
func WithStrategy(s unionfind.Strategy) Option {
	return func(c *solverConfig) {
		c.strategy = s
	}
}
