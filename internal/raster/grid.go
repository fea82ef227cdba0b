// Package raster decodes images into an indexable RGB pixel grid and
// provides point sampling and block aggregation over it.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"math"

	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/ahuang11/colordropper/internal/colour"
)

// ErrDecode wraps failures to decode image bytes into a pixel grid.
var ErrDecode = errors.New("image decode failed")

// Grid is a 2D grid of RGB pixel values in row-major order. Row 0 is the
// bottom of the displayed image: Decode flips the raster vertically so that
// the y axis increases upward, matching plot coordinates.
type Grid struct {
	width  int
	height int
	pix    []colour.RGB
}

// Decode decodes raster bytes (PNG, JPEG, GIF or WebP) into a Grid.
func Decode(data []byte) (*Grid, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w (format: %s): %v", ErrDecode, format, err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into a Grid, applying the vertical flip.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	g := &Grid{
		width:  w,
		height: h,
		pix:    make([]colour.RGB, w*h),
	}
	for y := 0; y < h; y++ {
		// Image row y maps to grid row h-1-y (bottom-up).
		row := (h - 1 - y) * w
		for x := 0; x < w; x++ {
			g.pix[row+x] = colour.ToRGB(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return g
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// At returns the pixel at (col, row). Indices must be in bounds.
func (g *Grid) At(col, row int) colour.RGB {
	return g.pix[row*g.width+col]
}

// SampleAt returns the pixel nearest to the fractional coordinates (x, y),
// where x selects a column and y a row. Coordinates are rounded to the
// nearest integer. The second return value is false when no grid is loaded
// or the rounded coordinates fall outside the grid; callers treat that as
// a no-op rather than an error.
func (g *Grid) SampleAt(x, y float64) (colour.RGB, bool) {
	if g == nil || g.width == 0 || g.height == 0 {
		return colour.RGB{}, false
	}
	col := int(math.Round(x))
	row := int(math.Round(y))
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return colour.RGB{}, false
	}
	return g.At(col, row), true
}

// Pixels returns the underlying pixel slice in row-major order. The slice
// must not be modified.
func (g *Grid) Pixels() []colour.RGB {
	if g == nil {
		return nil
	}
	return g.pix
}
