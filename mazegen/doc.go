// Package mazegen generates rectangular binary mazes for tests,
// benchmarks, and the breakwall CLI.
//
// What
//
//   - Generate(w, h) lays w×h rooms on the even coordinates of a
//     (2h−1)×(2w−1) grid and knocks out the walls between rooms using
//     randomized Kruskal over a disjoint-set forest (union by rank, path
//     compression).
//   - The result is 0/1 rows ready for grid.New or breach.Solve; the
//     top-left and bottom-right corners are always floor rooms.
//   - With no options the maze is "perfect": exactly one floor route
//     between any two rooms, so every leftover internal wall is a
//     candidate breach shortcut.
//   - WithExtraOpenings braids the maze by opening a fraction of the
//     leftover walls, adding loops.
//
// Determinism
//
//	WithSeed locks every random choice; the same seed and dimensions
//	always produce the same maze.
//
// Complexity (W×H rooms)
//
//   - Time:   O(W×H α(W×H))   (edge shuffle + union-find)
//   - Memory: O(W×H)
//
// Errors
//
//   - ErrBadDimensions   room counts below 1×1.
//   - ErrOptionViolation openings fraction outside [0,1].
package mazegen
