package fweh

import (
	"fmt"
	"image"
	"math"
)

// AspectRatio is a target width:height pair for the output canvas, e.g. 16:9.
type AspectRatio struct {
	Width  int
	Height int
}

// Float returns the ratio as a float64.
func (r AspectRatio) Float() float64 {
	return float64(r.Width) / float64(r.Height)
}

// Geometry fixes the output canvas size and where the source image lands on
// it. Placed keeps the source's native pixel size; the canvas grows around it
// according to the scale percentage and the optional target ratio.
type Geometry struct {
	Width  int
	Height int
	Placed image.Rectangle
}

// ResolveGeometry computes the canvas size and source placement for the given
// source dimensions. scale is a percentage: 100 makes the source touch the
// canvas edges, the default 110 leaves a visible margin on every side. If
// ratio is non-nil the canvas is extended along one axis to match it. offset
// shifts the centered source in pixels, x to the right and y upward; the
// position saturates so the source never leaves the canvas entirely.
func ResolveGeometry(srcW, srcH int, scale float64, ratio *AspectRatio, offset image.Point) (Geometry, error) {
	if srcW <= 0 || srcH <= 0 {
		return Geometry{}, fmt.Errorf("%w: source dimensions %dx%d", ErrInvalidGeometry, srcW, srcH)
	}
	if scale <= 0 {
		return Geometry{}, fmt.Errorf("%w: scale %.2f%%", ErrInvalidGeometry, scale)
	}

	factor := scale / 100
	var width, height int
	if ratio == nil {
		width = int(math.Round(float64(srcW) * factor))
		height = int(math.Round(float64(srcH) * factor))
	} else {
		if ratio.Width <= 0 || ratio.Height <= 0 {
			return Geometry{}, fmt.Errorf("%w: ratio %d:%d", ErrInvalidGeometry, ratio.Width, ratio.Height)
		}
		target := ratio.Float()
		if target > float64(srcW)/float64(srcH) {
			// Wider than the source: height drives, width follows the ratio.
			height = int(math.Round(float64(srcH) * factor))
			width = int(math.Round(float64(height) * target))
		} else {
			width = int(math.Round(float64(srcW) * factor))
			height = int(math.Round(float64(width) / target))
		}
	}
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("%w: canvas %dx%d", ErrInvalidGeometry, width, height)
	}

	// Center, then apply the offset. Positive y moves the image up, so it is
	// subtracted in raster coordinates.
	x := (width-srcW)/2 + offset.X
	y := (height-srcH)/2 - offset.Y

	x = clampRange(x, -(srcW - 1), width-1)
	y = clampRange(y, -(srcH - 1), height-1)

	return Geometry{
		Width:  width,
		Height: height,
		Placed: image.Rect(x, y, x+srcW, y+srcH),
	}, nil
}

// clampRange keeps v within [lo, hi].
func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
