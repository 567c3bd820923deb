// Package mazegen generates rectangular binary mazes suitable for the
// breach solver: 0 = floor, 1 = wall, with both solve corners guaranteed
// to be floor.
//
// Rooms sit on even coordinates of a (2H−1)×(2W−1) grid; the cells
// between adjacent rooms start as walls and are knocked out by randomized
// Kruskal over a disjoint-set forest until every room is connected.
package mazegen

// edge is a candidate opening: the wall cell between two adjacent rooms.
type edge struct {
	roomA, roomB int
	wallR, wallC int
}

// Generate builds a maze of cellsWide×cellsHigh rooms and returns its
// (2·cellsHigh−1)×(2·cellsWide−1) binary grid, ready for grid.New or
// breach.Solve. With no extra openings the maze is perfect: every pair of
// rooms is joined by exactly one floor route, so every remaining internal
// wall is a potential breach shortcut.
//
// Returns ErrBadDimensions for room counts below 1×1 and
// ErrOptionViolation for bad options.
// Complexity: O(W×H α(W×H)) time, O(W×H) memory.
func Generate(cellsWide, cellsHigh int, opts ...Option) ([][]int, error) {
	if cellsWide < 1 || cellsHigh < 1 {
		return nil, ErrBadDimensions
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	h, w := 2*cellsHigh-1, 2*cellsWide-1
	cells := make([][]int, h)
	for r := range cells {
		cells[r] = make([]int, w)
		for c := range cells[r] {
			cells[r][c] = 1
		}
	}
	// Rooms occupy the even/even coordinates.
	for r := 0; r < cellsHigh; r++ {
		for c := 0; c < cellsWide; c++ {
			cells[2*r][2*c] = 0
		}
	}

	room := func(r, c int) int { return r*cellsWide + c }
	edges := make([]edge, 0, 2*cellsWide*cellsHigh)
	for r := 0; r < cellsHigh; r++ {
		for c := 0; c < cellsWide; c++ {
			if c+1 < cellsWide {
				edges = append(edges, edge{
					roomA: room(r, c), roomB: room(r, c+1),
					wallR: 2 * r, wallC: 2*c + 1,
				})
			}
			if r+1 < cellsHigh {
				edges = append(edges, edge{
					roomA: room(r, c), roomB: room(r+1, c),
					wallR: 2*r + 1, wallC: 2 * c,
				})
			}
		}
	}
	o.Rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	// Randomized Kruskal: open a wall only when it joins two rooms that
	// are not yet connected.
	ds := newDisjointSet(cellsWide * cellsHigh)
	leftover := make([]edge, 0, len(edges))
	for _, e := range edges {
		if ds.union(e.roomA, e.roomB) {
			cells[e.wallR][e.wallC] = 0
		} else {
			leftover = append(leftover, e)
		}
	}

	// Optional braiding: open a fraction of the leftover walls to create
	// loops. The leftover slice is already shuffled.
	if o.ExtraOpenings > 0 {
		open := int(float64(len(leftover))*o.ExtraOpenings + 0.5)
		for i := 0; i < open && i < len(leftover); i++ {
			cells[leftover[i].wallR][leftover[i].wallC] = 0
		}
	}

	return cells, nil
}
