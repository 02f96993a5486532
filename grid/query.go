// SPDX-License-Identifier: MIT
// Package: percolation/grid
//
// query.go — counting and selecting cells by status.

package grid

// CountWhere returns the number of cells for which cell 'op' value holds.
// Counting Greater than Closed yields the number of open cells.
// Complexity: O(rows×cols).
func (g *Grid) CountWhere(value Status, op Operator) int {
	n := 0
	for _, s := range g.cells {
		if op.Match(s, value) {
			n++
		}
	}

	return n
}

// IndicesWhere returns, in ascending order, the flat ids of all cells for
// which cell 'op' value holds. The result is empty (not nil) when nothing matches.
// Complexity: O(rows×cols).
func (g *Grid) IndicesWhere(value Status, op Operator) []int {
	ids := make([]int, 0)
	for id, s := range g.cells {
		if op.Match(s, value) {
			ids = append(ids, id)
		}
	}

	return ids
}

// Porosity returns the fraction of cells that are not Closed, in [0,1].
func (g *Grid) Porosity() float64 {
	return float64(g.CountWhere(Closed, Greater)) / float64(len(g.cells))
}
