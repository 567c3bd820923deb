// Package render rasterizes a maze grid to an image: floor and wall cells
// as filled squares, with optional breach highlighting, corner arrows, and
// a border.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/breakwall/grid"
)

// Cell and marker colors, in the spirit of the classic maze renderers.
var (
	floorColor  = color.RGBA{245, 245, 245, 255}
	wallColor   = color.RGBA{40, 40, 40, 255}
	breachColor = color.RGBA{235, 140, 30, 255}
	startColor  = color.RGBA{40, 180, 70, 255}
	endColor    = color.RGBA{100, 120, 255, 255}
)

// Image rasterizes g, applying any number of functional Options, and
// returns the finished RGBA picture. Returns ErrNilGrid for a nil grid and
// ErrOptionViolation for bad options.
// Complexity: O(H×W×CellPixels²).
func Image(g *grid.Grid, opts ...Option) (*image.RGBA, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	px := o.CellPixels
	base := image.NewRGBA(image.Rect(0, 0, g.Width()*px, g.Height()*px))
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := grid.Position{Row: r, Col: c}
			fill := floorColor
			switch {
			case o.Breach != nil && *o.Breach == p:
				fill = breachColor
			case !g.IsFloor(p):
				fill = wallColor
			}
			cell := image.Rect(c*px, r*px, (c+1)*px, (r+1)*px)
			draw.Draw(base, cell, image.NewUniform(fill), image.Point{}, draw.Src)
		}
	}

	pic := base
	if o.MarkCorners {
		composed, err := markCorners(g, base, px)
		if err != nil {
			return nil, err
		}
		pic = composed
	}
	if o.Border > 0 {
		pic = addBorder(pic, o.Border)
	}

	return pic, nil
}

// addBorder frames img with a white border n pixels wide.
func addBorder(img *image.RGBA, n int) *image.RGBA {
	b := img.Bounds()
	framed := image.NewRGBA(image.Rect(0, 0, b.Dx()+2*n, b.Dy()+2*n))
	draw.Draw(framed, framed.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(framed, image.Rect(n, n, n+b.Dx(), n+b.Dy()), img, b.Min, draw.Src)

	return framed
}

// markCorners overlays a start arrow pointing into the maze and an end
// arrow pointing out of it, scaled to one cell each.
func markCorners(g *grid.Grid, base *image.RGBA, px int) (*image.RGBA, error) {
	composed := image_utils.NewCompositeImage()
	if err := composed.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: setting base maze image: %w", err)
	}

	startArrow := image_utils.ResizeImage(image_utils.RightArrow(startColor), px, px)
	if err := composed.AddImage(startArrow, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: adding start arrow: %w", err)
	}

	end := g.End()
	endArrow := image_utils.ResizeImage(image_utils.RightArrow(endColor), px, px)
	if err := composed.AddImage(endArrow, image.Pt(end.Col*px, end.Row*px)); err != nil {
		return nil, fmt.Errorf("render: adding end arrow: %w", err)
	}

	return image_utils.ToRGBA(composed), nil
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}

	return nil
}
