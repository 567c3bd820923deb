// Package render defines options and sentinel errors for rasterizing a
// maze grid to an image.
package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/breakwall/grid"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// defaultCellPixels is the side length of one rendered cell. Small enough
// for big mazes, large enough for the corner arrows to stay legible.
const defaultCellPixels = 9

// Option configures Image via functional arguments.
// If an Option is invalid (e.g. zero cell size), it is recorded internally
// and surfaced as ErrOptionViolation when Image is invoked.
type Option func(*Options)

// Options holds parameters to customize rendering.
type Options struct {
	// CellPixels is the square side length of one maze cell, ≥ 1.
	CellPixels int

	// Breach, when set, highlights one wall cell as the converted breach.
	Breach *grid.Position

	// MarkCorners overlays arrows on the start and end corners.
	MarkCorners bool

	// Border, if > 0, frames the image with a white border that many
	// pixels wide.
	Border int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with 9-pixel cells, no breach highlight,
// no corner markers, and no border.
func DefaultOptions() Options {
	return Options{
		CellPixels:  defaultCellPixels,
		Breach:      nil,
		MarkCorners: false,
		Border:      0,
		err:         nil,
	}
}

// WithCellPixels sets the rendered size of one cell.
//
//	n >= 1: cells are n×n pixels
//	n < 1:  invalid option → ErrOptionViolation
func WithCellPixels(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: cell size must be at least 1 pixel, got %d", ErrOptionViolation, n)

			return
		}
		o.CellPixels = n
	}
}

// WithBreach highlights p as the converted wall cell.
func WithBreach(p grid.Position) Option {
	return func(o *Options) {
		o.Breach = &p
	}
}

// WithCorners overlays direction arrows on the start and end corners.
func WithCorners() Option {
	return func(o *Options) {
		o.MarkCorners = true
	}
}

// WithBorder frames the image with a white border n pixels wide.
//
//	n > 0: border of n pixels
//	n == 0: explicit no border
//	n < 0: invalid option → ErrOptionViolation
func WithBorder(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: border cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.Border = n
	}
}
