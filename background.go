package fweh

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// BackgroundKind selects one of the supported background variants.
type BackgroundKind int

const (
	// BackgroundSolid fills the canvas with a single color.
	BackgroundSolid BackgroundKind = iota
	// BackgroundGradient fills the canvas with a vertical gradient.
	BackgroundGradient
	// BackgroundImage stretches an image over the canvas with a cover fit.
	BackgroundImage
)

// Background describes how the canvas behind the framed image is filled.
// Exactly one variant is active, selected by Kind; use the constructors
// rather than filling the struct by hand.
type Background struct {
	Kind  BackgroundKind
	Color color.NRGBA
	Stops []color.NRGBA
	Image image.Image
}

// SolidBackground returns a single-color background.
func SolidBackground(c color.NRGBA) Background {
	return Background{Kind: BackgroundSolid, Color: c}
}

// GradientBackground returns a vertical gradient background interpolating
// the given stops from top to bottom in order.
func GradientBackground(stops ...color.NRGBA) Background {
	return Background{Kind: BackgroundGradient, Stops: stops}
}

// ImageBackground returns a background that cover-fits img over the canvas,
// cropping any overflow around the center.
func ImageBackground(img image.Image) Background {
	return Background{Kind: BackgroundImage, Image: img}
}

// SynthesizeBackground renders bg as a width x height NRGBA buffer.
func SynthesizeBackground(bg Background, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidBackground, width, height)
	}
	switch bg.Kind {
	case BackgroundSolid:
		return solidBackground(bg.Color, width, height), nil
	case BackgroundGradient:
		if len(bg.Stops) < 2 {
			return nil, fmt.Errorf("%w: gradient needs at least two stops, got %d", ErrInvalidBackground, len(bg.Stops))
		}
		return gradientBackground(bg.Stops, width, height), nil
	case BackgroundImage:
		if bg.Image == nil || bg.Image.Bounds().Empty() {
			return nil, fmt.Errorf("%w: empty background image", ErrInvalidBackground)
		}
		return imaging.Fill(bg.Image, width, height, imaging.Center, imaging.Lanczos), nil
	default:
		return nil, fmt.Errorf("%w: unknown background kind %d", ErrInvalidBackground, bg.Kind)
	}
}

func solidBackground(c color.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	row := make([]uint8, width*4)
	for x := 0; x < width; x++ {
		d := row[x*4 : x*4+4 : x*4+4]
		d[0] = c.R
		d[1] = c.G
		d[2] = c.B
		d[3] = c.A
	}
	parallel(0, height, func(ys <-chan int) {
		for y := range ys {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+width*4], row)
		}
	})
	return dst
}

func gradientBackground(stops []color.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	parallel(0, height, func(ys <-chan int) {
		for y := range ys {
			c := gradientAt(stops, rowFraction(y, height))
			i := y * dst.Stride
			for x := 0; x < width; x++ {
				d := dst.Pix[i+x*4 : i+x*4+4 : i+x*4+4]
				d[0] = c.R
				d[1] = c.G
				d[2] = c.B
				d[3] = c.A
			}
		}
	})
	return dst
}

// rowFraction maps row y to [0, 1] so the first row hits the first stop
// exactly and the last row the last stop.
func rowFraction(y, height int) float64 {
	if height <= 1 {
		return 0
	}
	return float64(y) / float64(height-1)
}

// gradientAt interpolates the stop list at fraction t in [0, 1]. The range is
// partitioned into len(stops)-1 equal segments, one per adjacent stop pair.
func gradientAt(stops []color.NRGBA, t float64) color.NRGBA {
	segments := len(stops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		i = segments - 1
	}
	return lerpColor(stops[i], stops[i+1], pos-float64(i))
}

// lerpColor blends a towards b by t per channel.
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(a, b uint8) uint8 {
		return clamp(float64(a)*(1-t) + float64(b)*t)
	}
	return color.NRGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
