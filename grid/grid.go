// Package grid provides an immutable view of a rectangular binary maze:
// dimensions, bounds checks, and a per-cell passability predicate.
//
// Cells with value 0 are Floor; any non-zero value is Wall.
package grid

import (
	"strings"
)

// Grid is an immutable rectangular binary maze. It deep-copies its input
// on construction, so later mutation of the caller's slice has no effect.
type Grid struct {
	height, width int
	cells         [][]CellState
}

// New constructs a Grid from a non-empty, rectangular 2D slice of cell
// values, where 0 denotes Floor and any non-zero value denotes Wall.
// Returns ErrEmptyGrid if the input has no rows or no columns,
// ErrRagged if any row length differs from the first.
// Complexity: O(H×W) time and memory.
func New(cells [][]int) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrRagged
		}
	}
	// Deep copy to prevent external mutation during a solve.
	states := make([][]CellState, h)
	for r := 0; r < h; r++ {
		states[r] = make([]CellState, w)
		for c := 0; c < w; c++ {
			if cells[r][c] != 0 {
				states[r][c] = Wall
			}
		}
	}

	return &Grid{height: h, width: w, cells: states}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Start returns the top-left corner (0,0).
func (g *Grid) Start() Position { return Position{} }

// End returns the bottom-right corner (Height-1, Width-1).
func (g *Grid) End() Position {
	return Position{Row: g.height - 1, Col: g.width - 1}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// IsFloor reports whether p is in bounds and passable.
// Complexity: O(1).
func (g *Grid) IsFloor(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col] == Floor
}

// State returns the cell state at p, or ErrOutOfBounds if p is outside
// the grid.
func (g *Grid) State(p Position) (CellState, error) {
	if !g.InBounds(p) {
		return Floor, ErrOutOfBounds
	}

	return g.cells[p.Row][p.Col], nil
}

// Neighbors returns the in-bounds 4-directional neighbors of p, in the
// fixed traversal order up, left, right, down. Passability is not
// checked; use IsFloor on each result as needed.
// Complexity: O(1), at most 4 results.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Walls returns every Wall position in row-major order. The order is
// stable, which keeps downstream minimum scans deterministic.
// Complexity: O(H×W).
func (g *Grid) Walls() []Position {
	var out []Position
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == Wall {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}

	return out
}

// String renders the maze as rows of '.' (Floor) and '#' (Wall),
// one row per line. Intended for tests and debugging.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if r+1 < g.height {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
