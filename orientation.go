package fweh

import (
	"encoding/binary"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// orientation is an EXIF flag that specifies the transformation
// that should be applied to image to display it correctly.
type orientation int

const (
	orientationUnspecified orientation = iota
	orientationNormal
	orientationFlipH
	orientationRotate180
	orientationFlipV
	orientationTranspose
	orientationRotate270
	orientationTransverse
	orientationRotate90
)

const (
	markerSOI      = 0xffd8
	markerAPP1     = 0xffe1
	exifHeader     = 0x45786966
	byteOrderBE    = 0x4d4d
	byteOrderLE    = 0x4949
	orientationTag = 0x0112
)

// exifReader reads big-endian (or, after the byte-order mark, tag-order)
// integers from a JPEG stream with a sticky error, so the scan can bail out
// at the first short read.
type exifReader struct {
	r     io.Reader
	order binary.ByteOrder
	err   error
}

func (e *exifReader) u16() uint16 {
	var v uint16
	if e.err == nil {
		e.err = binary.Read(e.r, e.order, &v)
	}
	return v
}

func (e *exifReader) u32() uint32 {
	var v uint32
	if e.err == nil {
		e.err = binary.Read(e.r, e.order, &v)
	}
	return v
}

func (e *exifReader) skip(n int64) {
	if e.err == nil {
		_, e.err = io.CopyN(io.Discard, e.r, n)
	}
}

// readOrientation tries to read the orientation EXIF flag from image data in
// r. A missing EXIF block, a missing orientation tag or any read error yields
// orientationUnspecified.
func readOrientation(r io.Reader) orientation {
	e := &exifReader{r: r, order: binary.BigEndian}

	if e.u16() != markerSOI || e.err != nil {
		return orientationUnspecified // not a JPEG stream
	}

	// Scan segment markers until APP1.
	for {
		marker, size := e.u16(), e.u16()
		if e.err != nil || marker>>8 != 0xff || size < 2 {
			return orientationUnspecified
		}
		if marker == markerAPP1 {
			break
		}
		e.skip(int64(size) - 2)
	}

	if e.u32() != exifHeader || e.err != nil {
		return orientationUnspecified
	}
	e.skip(2)

	switch e.u16() {
	case byteOrderBE:
		e.order = binary.BigEndian
	case byteOrderLE:
		e.order = binary.LittleEndian
	default:
		return orientationUnspecified
	}
	e.skip(2)

	offset := e.u32()
	if e.err != nil || offset < 8 {
		return orientationUnspecified
	}
	e.skip(int64(offset) - 8)

	numTags := e.u16()
	for i := 0; i < int(numTags); i++ {
		if e.u16() != orientationTag {
			e.skip(10)
			continue
		}
		e.skip(6)
		v := e.u16()
		if e.err != nil || v < 1 || v > 8 {
			return orientationUnspecified
		}
		return orientation(v)
	}
	return orientationUnspecified
}

// fixOrientation applies a transform to img corresponding to the given
// orientation flag.
func fixOrientation(img image.Image, o orientation) image.Image {
	switch o {
	case orientationFlipH:
		return imaging.FlipH(img)
	case orientationFlipV:
		return imaging.FlipV(img)
	case orientationRotate90:
		return imaging.Rotate90(img)
	case orientationRotate180:
		return imaging.Rotate180(img)
	case orientationRotate270:
		return imaging.Rotate270(img)
	case orientationTranspose:
		return imaging.Transpose(img)
	case orientationTransverse:
		return imaging.Transverse(img)
	}
	return img
}
