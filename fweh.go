// Package fweh frames a single image: it settles the picture over a
// synthesized background, rounds its corners and optionally renders a soft
// drop shadow beneath it, producing one output canvas that may target a
// specific aspect ratio.
package fweh

import (
	"image"
)

// Frame runs the full composition pipeline over base according to opts:
// optional pre-resize, geometry resolution, corner mask, background and
// shadow synthesis, and the final layered composite. The background and the
// mask have no data dependency and are rendered concurrently.
func Frame(base image.Image, opts *Options) (*image.NRGBA, error) {
	if opts.Resize != nil {
		base = opts.Resize.do(base)
	}

	b := base.Bounds()
	geometry, err := ResolveGeometry(b.Dx(), b.Dy(), opts.Scale, opts.Ratio, opts.Offset)
	if err != nil {
		return nil, err
	}

	var (
		mask       *image.Alpha
		background *image.NRGBA
		maskErr    error
		bgErr      error
		done       = make(chan struct{})
	)
	go func() {
		defer close(done)
		background, bgErr = SynthesizeBackground(opts.Background, geometry.Width, geometry.Height)
	}()
	mask, maskErr = RoundedMask(b.Dx(), b.Dy(), opts.Roundness)
	<-done
	if maskErr != nil {
		return nil, maskErr
	}
	if bgErr != nil {
		return nil, bgErr
	}

	var shadow *image.NRGBA
	if opts.Shadow != nil {
		shadow, err = SynthesizeShadow(opts.Shadow, mask, geometry.Placed, geometry.Width, geometry.Height)
		if err != nil {
			return nil, err
		}
	}

	return Composite(background, shadow, base, mask, geometry.Placed)
}
