package fweh

import (
	"image"
	"image/color"
	"testing"
)

func TestFrameIdentity(t *testing.T) {
	// Scale 100, no ratio, no rounding, no shadow: the framed image is the
	// source itself, the white background never shows.
	red := color.NRGBA{255, 0, 0, 255}
	src := newUniformNRGBA(red, 100, 100)

	opts := NewOptions()
	opts.SetScale(100).SetBackground(SolidBackground(color.NRGBA{255, 255, 255, 255}))

	out, err := Frame(src, &opts)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Size() != image.Pt(100, 100) {
		t.Fatalf("want 100x100, got %v", out.Bounds().Size())
	}
	compare(t, src, out)
}

func TestFrameMargin(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}
	src := newUniformNRGBA(red, 100, 100)

	opts := NewOptions()
	opts.SetScale(200).SetBackground(SolidBackground(white))

	out, err := Frame(src, &opts)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Size() != image.Pt(200, 200) {
		t.Fatalf("want 200x200, got %v", out.Bounds().Size())
	}
	// The source keeps its native size, centered, with a pure white margin.
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			want := white
			if x >= 50 && x < 150 && y >= 50 && y < 150 {
				want = red
			}
			if got := out.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d): want %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestFrameWithRatio(t *testing.T) {
	src := newUniformNRGBA(color.NRGBA{0, 128, 0, 255}, 120, 90)

	opts := NewOptions()
	opts.SetScale(100).SetRatio(16, 9)

	out, err := Frame(src, &opts)
	if err != nil {
		t.Fatal(err)
	}
	size := out.Bounds().Size()
	if got := float64(size.X) / float64(size.Y); got < 1.75 || got > 1.81 {
		t.Errorf("canvas ratio: want about 16:9, got %v (%f)", size, got)
	}
}

func TestFrameRoundedOverGradient(t *testing.T) {
	src := newUniformNRGBA(color.NRGBA{255, 0, 0, 255}, 60, 60)

	opts := NewOptions()
	opts.SetScale(150).
		SetRoundness(100).
		SetBackground(GradientBackground(
			color.NRGBA{255, 255, 255, 255},
			color.NRGBA{0, 0, 0, 255},
		))

	out, err := Frame(src, &opts)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Size() != image.Pt(90, 90) {
		t.Fatalf("want 90x90, got %v", out.Bounds().Size())
	}
	// The clipped corner shows the gradient, the middle shows the source.
	if got := out.NRGBAAt(16, 16); got.R != got.G || got.G != got.B {
		t.Errorf("corner pixel should be background gray, got %v", got)
	}
	if got := out.NRGBAAt(45, 45); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("center pixel should be source red, got %v", got)
	}
}

func TestFrameWithShadow(t *testing.T) {
	src := newUniformNRGBA(color.NRGBA{0, 0, 255, 255}, 50, 50)

	opts := NewOptions()
	opts.SetBackground(SolidBackground(color.NRGBA{255, 255, 255, 255}))
	opts.SetShadow(&ShadowOption{
		Offset:  image.Pt(4, 4),
		Color:   color.NRGBA{0, 0, 0, 255},
		Radius:  2,
		Opacity: 0.8,
	})

	out, err := Frame(src, &opts)
	if err != nil {
		t.Fatal(err)
	}
	// 110% scale on 50px leaves a 2..3 pixel margin; the shadow darkens the
	// area right of the image's lower-right corner.
	edge := out.NRGBAAt(54, 30)
	if edge.R == 255 && edge.G == 255 && edge.B == 255 {
		t.Errorf("expected shadow tint near the right edge, got %v", edge)
	}
}

func TestFrameWithResize(t *testing.T) {
	src := newUniformNRGBA(color.NRGBA{9, 9, 9, 255}, 200, 100)

	opts := NewOptions()
	opts.SetScale(100).SetResize(100, 0, 0)

	out, err := Frame(src, &opts)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Size() != image.Pt(100, 50) {
		t.Fatalf("want 100x50, got %v", out.Bounds().Size())
	}
}

func TestFrameInvalidOptions(t *testing.T) {
	src := newUniformNRGBA(color.NRGBA{A: 255}, 10, 10)

	opts := NewOptions()
	opts.SetScale(0)
	if _, err := Frame(src, &opts); err == nil {
		t.Error("zero scale: want error")
	}

	opts = NewOptions()
	opts.SetBackground(GradientBackground())
	if _, err := Frame(src, &opts); err == nil {
		t.Error("empty gradient: want error")
	}

	opts = NewOptions()
	opts.SetShadow(&ShadowOption{Opacity: 2})
	if _, err := Frame(src, &opts); err == nil {
		t.Error("bad shadow opacity: want error")
	}
}
