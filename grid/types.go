// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/breakwall.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// Position identifies a cell by (Row, Col), 0-based from the top-left.
// It is a value type and the sole node identity: two positions are the
// same cell exactly when both coordinates match.
type Position struct {
	Row, Col int
}

// CellState classifies a single maze cell.
type CellState int

const (
	// Floor is a passable cell.
	Floor CellState = iota
	// Wall is an impassable cell; at most one may be breached per solve.
	Wall
)

// String returns "Floor" or "Wall".
func (s CellState) String() string {
	if s == Wall {
		return "Wall"
	}

	return "Floor"
}

// neighborOffsets is the fixed 4-directional move table: up, left, right, down.
// The order is stable so traversals are reproducible.
var neighborOffsets = [4]Position{
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
}
