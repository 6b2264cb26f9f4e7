package fweh

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// blendOver combines src over dst with the standard "over" operator on
// straight (non-premultiplied) alpha. When dst is opaque this reduces to
// a*src + (1-a)*dst per channel.
func blendOver(dst, src color.NRGBA) color.NRGBA {
	switch src.A {
	case 255:
		return src
	case 0:
		return dst
	}
	sa := uint32(src.A)
	da := uint32(dst.A)
	// Alpha accumulation, scaled by 255 to stay in integer arithmetic.
	outA := sa*255 + da*(255-sa)
	if outA == 0 {
		return color.NRGBA{}
	}
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sa*255 + uint32(d)*da*(255-sa) + outA/2) / outA)
	}
	return color.NRGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: uint8((outA + 127) / 255),
	}
}

// Composite assembles the final canvas: the background layer, the optional
// shadow layer over it, then the source image clipped through mask at placed.
// Layers must match the background's dimensions and mask must match the
// source; anything else reports ErrDimensionMismatch. The returned buffer is
// freshly allocated, none of the inputs are modified.
func Composite(background, shadow *image.NRGBA, src image.Image, mask *image.Alpha, placed image.Rectangle) (*image.NRGBA, error) {
	if background == nil {
		return nil, fmt.Errorf("%w: missing background layer", ErrDimensionMismatch)
	}
	bounds := background.Bounds()
	if shadow != nil && shadow.Bounds().Size() != bounds.Size() {
		return nil, fmt.Errorf("%w: shadow %v, canvas %v", ErrDimensionMismatch, shadow.Bounds().Size(), bounds.Size())
	}
	if src.Bounds().Size() != placed.Size() {
		return nil, fmt.Errorf("%w: source %v, placement %v", ErrDimensionMismatch, src.Bounds().Size(), placed.Size())
	}
	if mask.Bounds().Size() != src.Bounds().Size() {
		return nil, fmt.Errorf("%w: mask %v, source %v", ErrDimensionMismatch, mask.Bounds().Size(), src.Bounds().Size())
	}

	width, height := bounds.Dx(), bounds.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), background, bounds.Min, draw.Src)

	if shadow != nil {
		parallel(0, height, func(ys <-chan int) {
			for y := range ys {
				for x := 0; x < width; x++ {
					out.SetNRGBA(x, y, blendOver(out.NRGBAAt(x, y), shadow.NRGBAAt(x, y)))
				}
			}
		})
	}

	// Clone rebases the source to zero origin and normalizes it to NRGBA,
	// matching the zero-based mask from RoundedMask.
	source := imaging.Clone(src)
	visible := placed.Intersect(out.Bounds())
	if !visible.Empty() {
		parallel(visible.Min.Y, visible.Max.Y, func(ys <-chan int) {
			for y := range ys {
				sy := y - placed.Min.Y
				for x := visible.Min.X; x < visible.Max.X; x++ {
					sx := x - placed.Min.X
					p := source.NRGBAAt(sx, sy)
					coverage := uint32(mask.Pix[sy*mask.Stride+sx])
					p.A = uint8((uint32(p.A)*coverage + 127) / 255)
					out.SetNRGBA(x, y, blendOver(out.NRGBAAt(x, y), p))
				}
			}
		})
	}
	return out, nil
}
