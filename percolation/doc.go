// Package percolation simulates fluid percolation through a randomly opened
// porous grid.
//
// A Solver owns a unionfind.DisjointSet over rows×cols+2 elements. The two
// extra elements are virtual sentinels: every open cell in the top row is
// joined to the top sentinel and every open cell in the bottom row to the
// bottom sentinel. The whole-grid question "is there an open path from the
// top row to the bottom row?" then reduces to one Connected(top, bottom)
// query. No path search is ever needed.
//
// The Solver mutates the *grid.Grid it was given; the caller keeps its
// reference and observes every change. Only the Solver may write to the grid
// during a run.
//
// Typical loop:
//
//	g, _ := grid.New(12, 12)
//	s, _ := percolation.New(g)
//	for i := 0; i < g.CellCount(); i++ {
//		_, _, _ = s.OpenRandom(true)
//		s.RefreshFilledStatus()
//		if s.PercolatesTotally() { ... }
//	}
//
// A Solver is not safe for concurrent use.
package percolation
