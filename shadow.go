package fweh

import (
	"fmt"
	"image"
	"image/color"
)

// ShadowOption describes the drop shadow rendered beneath the framed image.
type ShadowOption struct {
	// Offset shifts the shadow relative to the image in raster coordinates.
	Offset image.Point
	// Color tints the shadow; only the RGB channels are used.
	Color color.NRGBA
	// Radius is the Gaussian blur standard deviation in pixels. Zero keeps
	// the silhouette hard-edged.
	Radius float64
	// Opacity scales the shadow alpha, 0 (invisible) to 1 (full).
	Opacity float64
}

// DefaultShadowOption mirrors the CLI defaults: a black shadow pushed toward
// the lower right with a generous blur.
func DefaultShadowOption() *ShadowOption {
	return &ShadowOption{
		Offset:  image.Pt(25, 25),
		Color:   color.NRGBA{0, 0, 0, 255},
		Radius:  25,
		Opacity: 1,
	}
}

// SynthesizeShadow renders opt as a canvas-sized NRGBA layer. The source
// silhouette is taken from mask, placed at placed translated by opt.Offset,
// scaled by opacity, blurred, and tinted with opt.Color. The layer is meant
// to be composited beneath the image itself.
func SynthesizeShadow(opt *ShadowOption, mask *image.Alpha, placed image.Rectangle, width, height int) (*image.NRGBA, error) {
	if opt.Opacity < 0 || opt.Opacity > 1 {
		return nil, fmt.Errorf("%w: opacity %.2f", ErrInvalidShadow, opt.Opacity)
	}
	if opt.Radius < 0 {
		return nil, fmt.Errorf("%w: blur radius %.2f", ErrInvalidShadow, opt.Radius)
	}

	silhouette := image.NewAlpha(image.Rect(0, 0, width, height))
	shape := placed.Add(opt.Offset)
	visible := shape.Intersect(silhouette.Bounds())
	mb := mask.Bounds()

	if !visible.Empty() {
		parallel(visible.Min.Y, visible.Max.Y, func(ys <-chan int) {
			for y := range ys {
				my := y - shape.Min.Y + mb.Min.Y
				i := y * silhouette.Stride
				j := my * mask.Stride
				for x := visible.Min.X; x < visible.Max.X; x++ {
					mx := x - shape.Min.X + mb.Min.X
					silhouette.Pix[i+x] = clamp(float64(mask.Pix[j+mx]) * opt.Opacity)
				}
			}
		})
	}

	blurred := blurAlpha(silhouette, opt.Radius)

	layer := image.NewNRGBA(image.Rect(0, 0, width, height))
	parallel(0, height, func(ys <-chan int) {
		for y := range ys {
			i := y * layer.Stride
			j := y * blurred.Stride
			for x := 0; x < width; x++ {
				d := layer.Pix[i+x*4 : i+x*4+4 : i+x*4+4]
				d[0] = opt.Color.R
				d[1] = opt.Color.G
				d[2] = opt.Color.B
				d[3] = blurred.Pix[j+x]
			}
		}
	})
	return layer, nil
}
