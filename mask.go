package fweh

import (
	"fmt"
	"image"
	"math"
)

// RoundedMask builds an anti-aliased coverage mask shaped as a rectangle with
// rounded corners. radiusPercent selects the corner radius as a percentage of
// half the shorter side: 0 leaves the rectangle untouched, 100 inscribes a
// full semicircle on each corner (a circle, on a square). Values outside
// [0, 100] are clamped. Coverage is 255 inside the shape, 0 outside, with a
// one-pixel falloff band along the boundary.
func RoundedMask(width, height int, radiusPercent float64) (*image.Alpha, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: mask dimensions %dx%d", ErrInvalidRadius, width, height)
	}
	if radiusPercent < 0 {
		radiusPercent = 0
	} else if radiusPercent > 100 {
		radiusPercent = 100
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	radius := radiusPercent / 100 * float64(min(width, height)) / 2
	halfW := float64(width) / 2
	halfH := float64(height) / 2

	parallel(0, height, func(ys <-chan int) {
		for y := range ys {
			i := y * mask.Stride
			cy := math.Abs(float64(y)+0.5-halfH) - (halfH - radius)
			for x := 0; x < width; x++ {
				cx := math.Abs(float64(x)+0.5-halfW) - (halfW - radius)
				mask.Pix[i+x] = clamp((0.5 - roundedDistance(cx, cy, radius)) * 255)
			}
		}
	})
	return mask, nil
}

// roundedDistance is the signed distance from a pixel center to the rounded
// rectangle boundary. qx and qy are the distances from the corner disc
// center along each axis; negative on the inside.
func roundedDistance(qx, qy, radius float64) float64 {
	if qx > 0 && qy > 0 {
		return math.Hypot(qx, qy) - radius
	}
	return math.Max(qx, qy) - radius
}
