// Package gridgraph treats the open cells of a percolation grid as the
// vertices of a graph and answers connectivity questions by plain traversal,
// independently of any union-find state.
//
// What:
//
//   - GridGraph is an immutable snapshot of a *grid.Grid.
//   - ConnectedComponents lists the clusters of open cells.
//   - Spans reports whether an open path joins the top and bottom rows.
//   - MinOpenings finds the fewest closed cells that would have to be opened
//     for the grid to percolate, along with one such path.
//
// Why:
//
//   - Cross-checking the union-find answers of the percolation solver.
//   - Reporting how far a grid is from percolating.
//
// Complexity:
//
//   - ConnectedComponents, Spans: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//   - MinOpenings:                O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - Options.OpenThreshold: minimum status considered open (grid.Opened).
//   - Options.Conn: Conn4 (4-neighbours) or Conn8 (8-neighbours).
//
// Errors:
//
//   - ErrNilGrid: New was called with a nil grid.
package gridgraph
