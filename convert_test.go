package fweh

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func encodeSample(t *testing.T, format Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := newUniformNRGBA(color.NRGBA{10, 200, 30, 255}, 16, 8)
	if err := Write(&buf, img, &FormatOption{Format: format}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeWrite(t *testing.T) {
	for _, format := range []Format{JPEG, PNG, GIF, TIFF, BMP} {
		b := encodeSample(t, format)
		img, err := Decode(bytes.NewBuffer(b))
		if err != nil {
			t.Error("Failed to decode", formatExts[format], err)
			continue
		}
		if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
			t.Error("Wrong decoded size for", formatExts[format], img.Bounds())
		}
		if err := Write(io.Discard, img, &FormatOption{Format: format}); err != nil {
			t.Error("Failed to write", formatExts[format], err)
		}
		if _, _, err := DecodeConfig(bytes.NewBuffer(b)); err != nil {
			t.Error("Failed to decode", formatExts[format], "config")
		}
	}
	if _, err := Decode(bytes.NewBufferString("Hello")); err == nil {
		t.Error("Decode string want error")
	}
}

func TestDecodeAutoOrientation(t *testing.T) {
	// A PNG has no EXIF block; decoding with auto-orientation enabled or
	// disabled must give the same pixels.
	b := encodeSample(t, PNG)
	img0, err := Decode(bytes.NewBuffer(b), AutoOrientation(true))
	if err != nil {
		t.Fatal(err)
	}
	img1, err := Decode(bytes.NewBuffer(b), AutoOrientation(false))
	if err != nil {
		t.Fatal(err)
	}
	compare(t, img0, img1)
}

func TestOpenSave(t *testing.T) {
	if _, err := Open("/invalid/path"); err == nil {
		t.Error("Open invalid path want error")
	}

	dir := t.TempDir()
	name := filepath.Join(dir, "sample.png")
	img := newUniformNRGBA(color.NRGBA{1, 2, 3, 255}, 10, 10)
	if err := Save(name, img, &defaultFormat); err != nil {
		t.Fatal("Fail to save image", err)
	}
	got, err := Open(name)
	if err != nil {
		t.Fatal("Fail to open image", err)
	}
	compare(t, img, got)

	if err := Save("/invalid/path", img, &defaultFormat); err == nil {
		t.Error("Save invalid path want error")
	}
	if err := os.Remove(name); err != nil {
		t.Error(err)
	}
}
