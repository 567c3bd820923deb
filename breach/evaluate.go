package breach

import (
	"github.com/katalvlaran/breakwall/frontier"
	"github.com/katalvlaran/breakwall/grid"
)

// Evaluate computes the best route through wall as the single converted
// cell: the minimum start-side step count of its floor neighbors, plus the
// minimum end-side step count of its floor neighbors, plus 1 for the step
// across the converted cell itself.
//
// Both step counts are 1-based (frontier.OriginStep), so the total counts
// every cell on the route, corners and breach included.
//
// Returns ok == false when either side has no reached floor neighbor —
// the wall does not join the two regions and yields no usable route.
// Pure function; wall cells are evaluated independently of one another.
// Complexity: O(1) — at most 4 neighbors inspected per side.
func Evaluate(g *grid.Grid, startMap, endMap frontier.DistanceMap, wall grid.Position) (steps int, ok bool) {
	minStart, okStart := 0, false
	minEnd, okEnd := 0, false
	for _, n := range g.Neighbors(wall) {
		if !g.IsFloor(n) {
			continue
		}
		if s, reached := startMap.Steps(n); reached && (!okStart || s < minStart) {
			minStart, okStart = s, true
		}
		if s, reached := endMap.Steps(n); reached && (!okEnd || s < minEnd) {
			minEnd, okEnd = s, true
		}
	}
	if !okStart || !okEnd {
		return 0, false
	}

	return minStart + minEnd + 1, true
}
