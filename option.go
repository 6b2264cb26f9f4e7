package fweh

import (
	"image"
	"image/color"
	"io"
	"path/filepath"
)

const defaultScale = 110

var defaultFormat = FormatOption{Format: PNG}

// Options represents options that can be used to configure a framing
// operation.
type Options struct {
	Scale      float64
	Roundness  float64
	Offset     image.Point
	Ratio      *AspectRatio
	Background Background
	Shadow     *ShadowOption
	Resize     *ResizeOption
	Format     FormatOption
}

// NewOptions creates a new option with default setting: scale 110%, square
// corners, a solid black background, no shadow and PNG output.
func NewOptions() Options {
	return Options{
		Scale:      defaultScale,
		Background: SolidBackground(color.NRGBA{0, 0, 0, 255}),
		Format:     defaultFormat,
	}
}

// SetScale sets the canvas scale percentage.
func (opts *Options) SetScale(scale float64) *Options {
	opts.Scale = scale
	return opts
}

// SetRoundness sets the corner radius percentage (0-100).
func (opts *Options) SetRoundness(roundness float64) *Options {
	opts.Roundness = roundness
	return opts
}

// SetOffset shifts the framed image from the canvas center. Positive x moves
// it right, positive y moves it up.
func (opts *Options) SetOffset(offset image.Point) *Options {
	opts.Offset = offset
	return opts
}

// SetRatio sets the target aspect ratio for the output canvas.
func (opts *Options) SetRatio(width, height int) *Options {
	opts.Ratio = &AspectRatio{Width: width, Height: height}
	return opts
}

// SetBackground sets the value for the Background field.
func (opts *Options) SetBackground(bg Background) *Options {
	opts.Background = bg
	return opts
}

// SetShadow enables the drop shadow. A nil option picks the defaults.
func (opts *Options) SetShadow(shadow *ShadowOption) *Options {
	if shadow == nil {
		shadow = DefaultShadowOption()
	}
	opts.Shadow = shadow
	return opts
}

// SetResize pre-scales the source image before framing.
func (opts *Options) SetResize(width, height int, percent float64) *Options {
	opts.Resize = &ResizeOption{Width: width, Height: height, Percent: percent}
	return opts
}

// SetFormat sets the value for the Format field.
func (opts *Options) SetFormat(f string, options ...EncodeOption) (err error) {
	opts.Format, err = setFormat(f, options...)
	return
}

// Convert frames base according to opts and encodes the result to w.
func (opts *Options) Convert(w io.Writer, base image.Image) error {
	img, err := Frame(base, opts)
	if err != nil {
		return err
	}
	return opts.Format.Write(img, w)
}

// ConvertExt convert filename's ext according image format.
func (opts *Options) ConvertExt(filename string) string {
	return filename[0:len(filename)-len(filepath.Ext(filename))] + "." + formatExts[opts.Format.Format]
}
