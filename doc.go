// Package percolation is a site-percolation simulator on square grids built
// around a disjoint-set connectivity engine.
//
// Cells of a closed grid are opened one at a time in random order. After
// each opening the simulator knows, in near-constant time, whether an open
// path joins the top row to the bottom row.
//
// Subpackages:
//
//	unionfind/   — disjoint-set with path halving and union by size
//	grid/        — three-valued cell matrix with index mapping and value queries
//	percolation/ — the Solver: two virtual sentinels, Open, OpenRandom, PercolatesTotally
//	gridgraph/   — traversal-based view of a grid (components, spanning check, 0-1 BFS)
//	render/      — console glyphs
//	ppm/         — plain-text PPM export
//	config/      — flags, environment and config file
//	simulation/  — the drive loop used by cmd/percolate
//
// Quick ASCII example (3×3, middle column open, fluid from the top):
//
//	░░██░░
//	░░██░░
//	░░██░░
//
//	go install github.com/kurono/percolation/cmd/percolate@latest
package percolation
