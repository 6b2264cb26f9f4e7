package fweh

import (
	"image"
	"math"
)

// gaussianKernel returns normalized weights for a 1-D Gaussian with the given
// standard deviation, truncated at three sigma on each side.
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(sigma * 3))
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// blurAlpha applies a separable Gaussian blur to a single-channel buffer.
// sigma <= 0 returns an untouched copy. The two 1-D passes run rows and
// columns through the worker pool; every worker owns its output line
// exclusively, so the passes need no synchronization beyond the join.
func blurAlpha(src *image.Alpha, sigma float64) *image.Alpha {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if sigma <= 0 {
		dst := image.NewAlpha(b)
		copy(dst.Pix, src.Pix)
		return dst
	}

	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2
	tmp := image.NewAlpha(b)
	dst := image.NewAlpha(b)

	// Horizontal pass. Pixels beyond the edges count as fully transparent.
	parallel(0, h, func(ys <-chan int) {
		for y := range ys {
			i := y * src.Stride
			for x := 0; x < w; x++ {
				var sum float64
				for k, weight := range kernel {
					if sx := x + k - radius; sx >= 0 && sx < w {
						sum += weight * float64(src.Pix[i+sx])
					}
				}
				tmp.Pix[i+x] = clamp(sum)
			}
		}
	})

	// Vertical pass.
	parallel(0, w, func(xs <-chan int) {
		for x := range xs {
			for y := 0; y < h; y++ {
				var sum float64
				for k, weight := range kernel {
					if sy := y + k - radius; sy >= 0 && sy < h {
						sum += weight * float64(tmp.Pix[sy*tmp.Stride+x])
					}
				}
				dst.Pix[y*dst.Stride+x] = clamp(sum)
			}
		}
	})

	return dst
}
