// Package grid models a rectangular matrix of percolation sites stored as a
// flat, row-major slice of three-valued statuses.
//
// What:
//
//   - Status: Closed < Opened < OpenedAndFilled (ordinal; renderers treat
//     the values as brightness levels).
//   - Index/Coord: bijective mapping id = cols*row + col and its inverse.
//   - IndexClamped/CoordClamped: the same mapping with out-of-range inputs
//     pulled to the nearest valid cell. Used by display and export paths.
//   - CountWhere/IndicesWhere: value queries under an Operator.
//
// Ownership:
//
//   - A Grid has no hidden state and no locking. It is created by the caller
//     and mutated in place by exactly one owner at a time (the percolation
//     solver during a run).
//
// Errors:
//
//   - ErrInvalidDimensions: rows <= 0 or cols <= 0.
//   - ErrIndexOutOfRange: a checked accessor received coordinates or an id
//     outside the grid.
package grid
