package fweh

import (
	"errors"
	"image"
	"testing"
)

func compare(t *testing.T, img0, img1 image.Image) {
	t.Helper()
	b0 := img0.Bounds()
	b1 := img1.Bounds()
	if b0.Dx() != b1.Dx() || b0.Dy() != b1.Dy() {
		t.Fatalf("wrong image size: want %s, got %s", b0, b1)
	}
	x1 := b1.Min.X - b0.Min.X
	y1 := b1.Min.Y - b0.Min.Y
	for y := b0.Min.Y; y < b0.Max.Y; y++ {
		for x := b0.Min.X; x < b0.Max.X; x++ {
			c0 := img0.At(x, y)
			c1 := img1.At(x+x1, y+y1)
			r0, g0, b0, a0 := c0.RGBA()
			r1, g1, b1, a1 := c1.RGBA()
			if r0 != r1 || g0 != g1 || b0 != b1 || a0 != a1 {
				t.Fatalf("pixel at (%d, %d) has wrong color: want %v, got %v", x, y, c0, c1)
			}
		}
	}
}

func TestResolveGeometry(t *testing.T) {
	testCase := []struct {
		srcW, srcH int
		scale      float64
		ratio      *AspectRatio
		offset     image.Point
		canvas     image.Point
		placed     image.Rectangle
	}{
		{100, 100, 100, nil, image.Point{}, image.Pt(100, 100), image.Rect(0, 0, 100, 100)},
		{100, 100, 110, nil, image.Point{}, image.Pt(110, 110), image.Rect(5, 5, 105, 105)},
		{100, 100, 200, nil, image.Point{}, image.Pt(200, 200), image.Rect(50, 50, 150, 150)},
		{100, 50, 100, nil, image.Point{}, image.Pt(100, 50), image.Rect(0, 0, 100, 50)},
		// Wider target ratio: height drives, width follows the ratio.
		{100, 100, 100, &AspectRatio{16, 9}, image.Point{}, image.Pt(178, 100), image.Rect(39, 0, 139, 100)},
		// Taller target ratio: width drives.
		{100, 100, 100, &AspectRatio{1, 2}, image.Point{}, image.Pt(100, 200), image.Rect(0, 50, 100, 150)},
		// Positive y offset moves the image up.
		{100, 100, 200, nil, image.Pt(10, 20), image.Pt(200, 200), image.Rect(60, 30, 160, 130)},
	}

	for i, tc := range testCase {
		geometry, err := ResolveGeometry(tc.srcW, tc.srcH, tc.scale, tc.ratio, tc.offset)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if got := image.Pt(geometry.Width, geometry.Height); got != tc.canvas {
			t.Errorf("#%d: canvas differs: want %v, got %v", i, tc.canvas, got)
		}
		if geometry.Placed != tc.placed {
			t.Errorf("#%d: placement differs: want %v, got %v", i, tc.placed, geometry.Placed)
		}
	}
}

func TestResolveGeometryScaleRatio(t *testing.T) {
	// For any scale above 100 the source occupies exactly 100/scale of the
	// canvas along its driving dimension.
	for _, scale := range []float64{110, 125, 150, 200, 400} {
		geometry, err := ResolveGeometry(200, 100, scale, nil, image.Point{})
		if err != nil {
			t.Fatal(err)
		}
		want := int(scale / 100 * 200)
		if geometry.Width != want {
			t.Errorf("scale %.0f: want width %d, got %d", scale, want, geometry.Width)
		}
		if w := geometry.Placed.Dx(); w != 200 {
			t.Errorf("scale %.0f: placed width changed: got %d", scale, w)
		}
	}
}

func TestResolveGeometrySaturation(t *testing.T) {
	geometry, err := ResolveGeometry(100, 100, 110, nil, image.Pt(-100000, 100000))
	if err != nil {
		t.Fatal(err)
	}
	canvas := image.Rect(0, 0, geometry.Width, geometry.Height)
	if geometry.Placed.Intersect(canvas).Empty() {
		t.Errorf("placed rect %v fully left the canvas %v", geometry.Placed, canvas)
	}
}

func TestResolveGeometryErrors(t *testing.T) {
	testCase := []struct {
		srcW, srcH int
		scale      float64
		ratio      *AspectRatio
	}{
		{0, 100, 100, nil},
		{100, 0, 100, nil},
		{100, 100, 0, nil},
		{100, 100, -50, nil},
		{100, 100, 100, &AspectRatio{0, 9}},
		{100, 100, 100, &AspectRatio{16, -9}},
	}
	for i, tc := range testCase {
		if _, err := ResolveGeometry(tc.srcW, tc.srcH, tc.scale, tc.ratio, image.Point{}); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("#%d: want ErrInvalidGeometry, got %v", i, err)
		}
	}
}
