// Package breach solves the one-breach maze problem: the minimum step
// count from the top-left corner to the bottom-right corner of a binary
// maze when exactly one wall cell may be converted to floor.
//
// What
//
//   - Solve(cells) builds an immutable grid.Grid, runs two independent
//     frontier expansions (one per corner), then joins the two distance
//     maps through every wall cell and keeps the global minimum.
//   - Evaluate scores a single wall cell: min start-side floor-neighbor
//     step count + min end-side floor-neighbor step count + 1 for the
//     converted cell itself. Wall cells never interact.
//   - Steps(cells) is the scalar entry point returning only the count.
//   - Result carries the count, the winning wall cell, and whether the
//     route needed no breach at all (WithDirectPath only).
//
// Why
//
//   - Splitting the route at its unique converted wall reduces the search
//     to two plain breadth-first expansions plus an O(1) probe per wall,
//     instead of one search per candidate wall.
//
// Convention
//
//	Step counts are 1-based (the origin counts as step 1), so a Result
//	counts every cell on the route — corners and breach included. Moves
//	equal Steps − 1.
//
// Determinism
//
//	Walls are scanned in row-major order and only strictly shorter
//	candidates replace the current best, so ties resolve to the first
//	minimal wall regardless of worker count.
//
// Complexity (H×W grid)
//
//   - Time:   O(H×W)   (two expansions + one probe per wall cell)
//   - Memory: O(H×W)   (two distance maps)
//
// Usage
//
//	res, err := breach.Solve(cells)
//	switch {
//	case errors.Is(err, breach.ErrNoSolution):
//	    // no single wall joins the corners — a normal outcome
//	case err != nil:
//	    // grid.ErrEmptyGrid, grid.ErrRagged, ErrOptionViolation, ctx error
//	default:
//	    fmt.Println(res.Steps, res.Breach)
//	}
//
// Options
//
//   - DefaultOptions(): background Context, sequential, breach-only.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithParallel(n):    run corner expansions concurrently and shard the
//     wall scan across n goroutines (n>1); 0 or 1 = sequential.
//   - WithDirectPath():   also consider the breach-free route; it wins
//     ties against equally short breach candidates.
//
// Errors
//
//   - grid.ErrEmptyGrid, grid.ErrRagged   propagated from construction.
//   - ErrOptionViolation                  invalid Option (e.g. negative workers).
//   - ErrNoSolution                       no wall joins the two regions; also
//     the default result for wall-free mazes (see WithDirectPath).
//   - Context errors on cancellation.
package breach
