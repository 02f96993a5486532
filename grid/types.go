// SPDX-License-Identifier: MIT
// Package: percolation/grid
//
// types.go — cell statuses, comparison operators and sentinel errors.

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("grid: dimensions must be positive")
	// ErrIndexOutOfRange indicates coordinates or a flat id outside the grid.
	ErrIndexOutOfRange = errors.New("grid: index out of range")
	// ErrInvalidStatus indicates a value outside Closed..OpenedAndFilled.
	ErrInvalidStatus = errors.New("grid: invalid cell status")
)

// Status is the state of a single cell.
type Status int

const (
	// Closed cells block the fluid.
	Closed Status = iota
	// Opened cells let the fluid through but are not reached by it (yet).
	Opened
	// OpenedAndFilled cells are open and connected to the top row.
	OpenedAndFilled
)

// String returns a short lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opened:
		return "opened"
	case OpenedAndFilled:
		return "filled"
	default:
		return "invalid"
	}
}

// Valid reports whether s is one of the three defined statuses.
func (s Status) Valid() bool { return s >= Closed && s <= OpenedAndFilled }

// Operator compares a cell status against a reference value: cell 'op' value.
type Operator int

const (
	Equal Operator = iota
	Greater
	Less
	GreaterOrEqual
	LessOrEqual
)

// Match reports whether cell 'op' value holds. Unknown operators match nothing.
func (op Operator) Match(cell, value Status) bool {
	switch op {
	case Equal:
		return cell == value
	case Greater:
		return cell > value
	case Less:
		return cell < value
	case GreaterOrEqual:
		return cell >= value
	case LessOrEqual:
		return cell <= value
	default:
		return false
	}
}

// String returns the mathematical symbol of the operator.
func (op Operator) String() string {
	switch op {
	case Equal:
		return "="
	case Greater:
		return ">"
	case Less:
		return "<"
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	default:
		return "?"
	}
}
