// Package breakwall solves rectangular binary mazes under the one-breach
// rule: find the minimum step count from the top-left corner to the
// bottom-right corner when at most one wall cell may be converted to floor
// along the way.
//
// 🚀 What is breakwall?
//
//	A small, focused library built from composable pieces:
//		• grid     — immutable binary maze view: dimensions, bounds, passability
//		• frontier — breadth-first distance maps from a single origin
//		• breach   — per-wall breach evaluation and the two-sided solver
//		• mazegen  — reproducible random maze generation for tests and demos
//		• render   — rasterize a maze (and its breach cell) to a PNG image
//
// ✨ Why choose breakwall?
//
//   - Minimal API, clear naming, sentinel errors with errors.Is semantics
//   - Pure functions over immutable inputs — safe to run concurrently
//   - Functional options (WithContext, WithParallel, WithDirectPath…)
//   - Pure Go library core; image output only in the render helper
//
// Quick ASCII example (0 = floor, 1 = wall):
//
//	0 1 0
//	0 1 0
//	0 0 0
//
// Breaching either middle wall joins the two corners; breach.Steps returns
// the minimal 1-based step count (5 for the grid above).
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/breakwall
package breakwall
