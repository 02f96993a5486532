// Command percolate solves the percolation problem on a square grid.
//
// Cells are opened one at a time in random order. The fluid flows from the
// top side; the grid percolates once a continuous path of open cells joins
// the top side to the bottom side. Closed cells are drawn dark grey, open
// cells light grey and cells filled with fluid white.
//
// Usage:
//
//	percolate [-res N] [-console] [-image] [-ll] [--saves DIR] [--seed S] [--verify]
package main

import (
	"errors"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/kurono/percolation/config"
	"github.com/kurono/percolation/logger"
	"github.com/kurono/percolation/simulation"
)

func main() {
	log, err := logger.New(false)
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(os.Args[1:], log)
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal("invalid command line", zap.Error(err))
	}
	if cfg.Debug {
		if log, err = logger.New(true); err != nil {
			panic(err)
		}
	}
	defer func() { _ = log.Sync() }()

	log.Info("start",
		zap.Int("res", cfg.Resolution),
		zap.Bool("console", cfg.Console),
		zap.Bool("image", cfg.Image),
		zap.String("saves", cfg.SavesDir),
		zap.Int64("seed", cfg.Seed),
		zap.Bool("verify", cfg.Verify))

	sim, err := simulation.New(cfg, log, os.Stdout)
	if err != nil {
		log.Fatal("cannot set up simulation", zap.Error(err))
	}
	if _, err := sim.Run(); err != nil {
		log.Fatal("simulation failed", zap.Error(err))
	}
}
