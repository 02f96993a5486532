// SPDX-License-Identifier: MIT
// Package: percolation/unionfind
//
// unionfind.go — DisjointSet with path halving and union by size.

package unionfind

import (
	"fmt"
	"strconv"
	"strings"
)

// DisjointSet partitions the elements 0..n-1 into disjoint components.
// parent[i] is the parent of i (a root has parent[i] == i); for QuickFind
// it is the component label directly. size[r] is meaningful for roots only.
type DisjointSet struct {
	parent   []int
	size     []int
	count    int
	strategy Strategy
}

// New allocates n singleton components, each self-rooted with size 1.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*DisjointSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	o := newOptions(opts...)
	ds := &DisjointSet{
		parent:   make([]int, n),
		size:     make([]int, n),
		count:    n,
		strategy: o.strategy,
	}
	for i := range ds.parent {
		ds.parent[i] = i // every element is its own root
		ds.size[i] = 1
	}

	return ds, nil
}

// Len returns the number of elements, n.
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Count returns the current number of disjoint components.
func (ds *DisjointSet) Count() int { return ds.count }

// Strategy returns the policy the set was built with.
func (ds *DisjointSet) Strategy() Strategy { return ds.strategy }

// Find returns the root of the component containing p.
// Under Weighted and QuickUnion every node on the walk is re-pointed to its
// grandparent, so Find mutates the structure.
// Complexity: amortized O(α(n)) for Weighted, O(n) worst case otherwise.
func (ds *DisjointSet) Find(p int) (int, error) {
	if err := ds.validate(p); err != nil {
		return 0, err
	}

	return ds.root(p), nil
}

// Connected reports whether p and q belong to the same component.
// The only mutation is the path halving done by Find.
func (ds *DisjointSet) Connected(p, q int) (bool, error) {
	if err := ds.validate(p); err != nil {
		return false, err
	}
	if err := ds.validate(q); err != nil {
		return false, err
	}

	return ds.root(p) == ds.root(q), nil
}

// Union merges the components containing p and q and reports whether a merge
// happened. It is a no-op (false, nil) when p and q are already connected.
// Each successful merge decrements Count by exactly one.
// Complexity: amortized O(α(n)) for Weighted, O(n) for QuickFind.
func (ds *DisjointSet) Union(p, q int) (bool, error) {
	if err := ds.validate(p); err != nil {
		return false, err
	}
	if err := ds.validate(q); err != nil {
		return false, err
	}

	rootP, rootQ := ds.root(p), ds.root(q)
	if rootP == rootQ {
		return false, nil
	}

	switch ds.strategy {
	case QuickFind:
		// Relabel every member of p's component with q's label.
		for i, label := range ds.parent {
			if label == rootP {
				ds.parent[i] = rootQ
			}
		}
		ds.size[rootQ] += ds.size[rootP]
	case QuickUnion:
		ds.link(rootP, rootQ)
	default:
		// Smaller tree goes under the larger; on a tie q's root goes under p's.
		if ds.size[rootP] < ds.size[rootQ] {
			ds.link(rootP, rootQ)
		} else {
			ds.link(rootQ, rootP)
		}
	}
	ds.count--

	return true, nil
}

// Size returns the number of elements in the component containing p.
func (ds *DisjointSet) Size(p int) (int, error) {
	r, err := ds.Find(p)
	if err != nil {
		return 0, err
	}

	return ds.size[r], nil
}

// String renders the parent array as space-separated indices.
func (ds *DisjointSet) String() string {
	var sb strings.Builder
	for i, id := range ds.parent {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(id))
	}

	return sb.String()
}

// root walks to the root of p with path halving. p must be valid.
func (ds *DisjointSet) root(p int) int {
	if ds.strategy == QuickFind {
		return ds.parent[p]
	}
	for p != ds.parent[p] {
		ds.parent[p] = ds.parent[ds.parent[p]]
		p = ds.parent[p]
	}

	return p
}

// link makes child a direct descendant of root and accumulates the size.
func (ds *DisjointSet) link(child, root int) {
	ds.parent[child] = root
	ds.size[root] += ds.size[child]
}

func (ds *DisjointSet) validate(p int) error {
	if p < 0 || p >= len(ds.parent) {
		return fmt.Errorf("element %d not in [0,%d): %w", p, len(ds.parent), ErrIndexOutOfRange)
	}

	return nil
}
