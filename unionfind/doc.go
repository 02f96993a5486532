// Package unionfind provides an array-backed disjoint-set (union-find)
// structure over the integer elements 0..n-1.
//
// What:
//
//   - Union(p, q) merges the components that contain p and q.
//   - Connected(p, q) reports whether p and q share a root.
//   - Count() reports how many disjoint components are alive.
//
// Strategies:
//
//   - Weighted (default): union by size plus path halving in Find.
//     Every visited node is re-pointed to its grandparent while walking
//     to the root. Tree height stays O(log n); amortized cost per
//     operation is near-constant.
//   - QuickUnion: path halving, but roots are attached blindly (p under q).
//   - QuickFind: Connected is O(1), Union relabels the whole array, O(n).
//
// The two simpler strategies exist for comparative benchmarks only.
//
// Determinism:
//
//   - Given the same sequence of unions the structure is identical. When two
//     roots carry equal sizes, q's root is attached under p's root.
//
// Concurrency:
//
//   - A DisjointSet is NOT safe for concurrent use. Find mutates parent
//     pointers even when it is reached from the read-only Connected.
//
// Errors:
//
//   - ErrInvalidSize: New called with n <= 0.
//   - ErrIndexOutOfRange: an element outside [0, n) was passed.
package unionfind
