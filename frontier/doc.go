// Package frontier provides breadth-first distance maps over a grid.Grid,
// the measurement half of the one-breach maze solver.
//
// What
//
//   - Distances(g, origin) expands ring by ring from a single origin and
//     returns a DistanceMap: reached Position → minimum 1-based step count.
//   - The origin itself carries step count OriginStep (1); each expansion
//     ring adds exactly 1. A cell's first step count is final.
//   - Unreached cells are simply absent from the map — there is no numeric
//     "infinity" placeholder.
//   - The origin is recorded even when it is a wall cell; expansion only
//     ever enters floor cells.
//   - Supports a per-cell OnVisit hook, a MaxSteps cutoff, and context
//     cancellation.
//
// Why
//
//   - Two independent runs (one per maze corner) give both halves of every
//     possible breach route; the breach package joins them per wall cell.
//   - Level order guarantees first-visit minimality on unweighted grids,
//     so no tie-breaking is needed.
//
// Determinism
//
//	Cells within a ring are expanded in insertion order, and neighbors are
//	offered in the fixed up/left/right/down order, so ring contents and
//	OnVisit sequences are fully reproducible.
//
// Complexity (H×W grid)
//
//   - Time:   O(H×W)   (each floor cell entered at most once, 4 edges each)
//   - Memory: O(H×W)   (distance map plus the current and next rings)
//
// Usage
//
//	dist, err := frontier.Distances(g, g.Start())
//	if err != nil {
//	    // handle ErrNilGrid, ErrOriginOutOfBounds, ErrOptionViolation,
//	    // a context error, or a hook error
//	}
//	steps, ok := dist.Steps(g.End())
//
// Options
//
//   - DefaultOptions(): background Context, no step limit, no-op hook.
//   - WithContext(ctx):  set a custom context for cancellation.
//   - WithMaxSteps(n):   stop expanding past step count n (>0), 0 = no limit.
//   - WithOnVisit(fn):   hook per visited cell; returning error aborts.
//
// Errors
//
//   - ErrNilGrid            if the grid pointer is nil.
//   - ErrOriginOutOfBounds  if the origin lies outside the grid.
//   - ErrOptionViolation    if an invalid Option is supplied (e.g. negative
//     MaxSteps).
//   - Wrapped user-supplied hook errors from OnVisit.
package frontier
