// Package grid provides an immutable view of a rectangular binary maze,
// the shared substrate for the frontier and breach packages.
//
// What:
//
//   - Grid wraps a rectangular [][]int maze: 0 = Floor, non-zero = Wall.
//   - Position (Row, Col) is the sole cell identity used in all lookups.
//   - Bounds and passability predicates: InBounds, IsFloor, State.
//   - Fixed 4-directional adjacency via Neighbors (up, left, right, down).
//   - Walls enumerates every wall cell in row-major order.
//
// Why:
//
//   - One construction-time validation point: downstream algorithms can
//     assume a rectangular, non-empty maze and skip re-checking.
//   - Deep-copied input makes a Grid safe to share across concurrent
//     read-only traversals.
//
// Complexity:
//
//   - New:       O(H×W) time and memory (validation + deep copy).
//   - InBounds, IsFloor, State, Neighbors: O(1).
//   - Walls, String: O(H×W).
//
// Errors:
//
//   - ErrEmptyGrid:   input has no rows or no columns.
//   - ErrRagged:      rows have differing lengths.
//   - ErrOutOfBounds: State called with a position outside the grid.
package grid
