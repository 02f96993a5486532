// SPDX-License-Identifier: MIT
// Package: percolation/gridgraph
//
// components.go — BFS over open cells.

package gridgraph

// ConnectedComponents finds all clusters of open cells under gg.Conn.
// Each component is a slice of row-major indices in BFS discovery order;
// components are ordered by their first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, len(gg.Cells))
	var comps [][]int

	for i0 := range gg.Cells {
		if !gg.IsOpen(i0) || seen[i0] {
			continue
		}
		seen[i0] = true
		comps = append(comps, gg.bfs([]int{i0}, seen))
	}

	return comps
}

// ReachableFromTop marks every cell connected to an open cell of the top row.
// Time: O(W·H·d).
func (gg *GridGraph) ReachableFromTop() []bool {
	seen := make([]bool, len(gg.Cells))
	var sources []int
	for col := 0; col < gg.Cols; col++ {
		if i := gg.index(0, col); gg.IsOpen(i) {
			seen[i] = true
			sources = append(sources, i)
		}
	}
	gg.bfs(sources, seen)

	return seen
}

// Spans reports whether an open path joins the top row to the bottom row.
// Time: O(W·H·d).
func (gg *GridGraph) Spans() bool {
	reached := gg.ReachableFromTop()
	for col := 0; col < gg.Cols; col++ {
		if reached[gg.index(gg.Rows-1, col)] {
			return true
		}
	}

	return false
}

// bfs expands from queue over open cells, marking seen, and returns every
// cell it dequeued. Sources must already be marked.
func (gg *GridGraph) bfs(queue []int, seen []bool) []int {
	for qi := 0; qi < len(queue); qi++ {
		ur, uc := gg.Coordinate(queue[qi])
		for _, d := range gg.neighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if !gg.InBounds(vr, vc) {
				continue
			}
			vi := gg.index(vr, vc)
			if !seen[vi] && gg.IsOpen(vi) {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
