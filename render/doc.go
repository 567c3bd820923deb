// Package render rasterizes a maze grid to a PNG-ready image, for the
// breakwall CLI and for eyeballing solver results.
//
// What
//
//   - Image(g) draws every cell as a filled square: light floor, dark
//     wall, orange breach highlight (WithBreach).
//   - WithCorners overlays arrows on the start and end corners;
//     WithBorder frames the picture; WithCellPixels scales it.
//   - WritePNG encodes the result to any io.Writer.
//
// Complexity
//
//   - Image: O(H×W×CellPixels²) time and memory.
//
// Errors
//
//   - ErrNilGrid          nil grid pointer.
//   - ErrOptionViolation  zero/negative cell size or negative border.
package render
