// SPDX-License-Identifier: MIT
// Package: percolation/gridgraph
//
// expand.go — 0-1 BFS for the cheapest top-to-bottom opening.

package gridgraph

import (
	"container/list"
)

// MinOpenings finds the smallest number of closed cells that must be opened
// so that an open path joins the top row to the bottom row. It returns one
// such path (row-major indices, top to bottom) and its cost. A grid that
// already percolates has cost 0.
//
// Behavior:
//  1. Multi-source 0-1 BFS from every top-row cell:
//     • entering an open cell   → cost 0
//     • entering a closed cell  → cost 1
//  2. Stop at the first bottom-row cell taken off the deque.
//  3. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H) for distance and prev pointers.
func (gg *GridGraph) MinOpenings() (path []int, cost int) {
	n := len(gg.Cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// Deque holds cost-0 moves at the front and cost-1 moves at the back.
	dq := list.New()
	for col := 0; col < gg.Cols; col++ {
		i := gg.index(0, col)
		dist[i] = gg.step(i)
		if dist[i] == 0 {
			dq.PushFront(i)
		} else {
			dq.PushBack(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		ur, uc := gg.Coordinate(u)
		if ur == gg.Rows-1 {
			target = u
			break
		}
		for _, d := range gg.neighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if !gg.InBounds(vr, vc) {
				continue
			}
			v := gg.index(vr, vc)
			step := gg.step(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// Every grid has at least one top-to-bottom column, so target is set.
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}

	return path, dist[target]
}

// step is the cost of entering cell i.
func (gg *GridGraph) step(i int) int {
	if gg.IsOpen(i) {
		return 0
	}

	return 1
}
