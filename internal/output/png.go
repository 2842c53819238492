package output

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/disintegration/gift"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Gray16 renders a 2D field as an auto-ranged 16-bit grayscale image. The
// first axis runs along x, so the image is n0 wide and n1 tall.
func Gray16(data []float64, ext core.Extents, opts Options) *image.Gray16 {
	nx, ny := ext[0], ext[1]
	norm := autoRange(data, opts)

	img := image.NewGray16(image.Rect(0, 0, nx, ny))
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			q := norm.Quantize(data[i*ny+j], math.MaxUint16)
			img.SetGray16(i, j, color.Gray16{Y: uint16(q)})
		}
	}
	return img
}

// Blur applies a Gaussian blur with the given sigma.
func Blur(img *image.Gray16, sigma float32) *image.Gray16 {
	g := gift.New(gift.GaussianBlur(sigma))
	dst := image.NewGray16(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

func writePNG(w io.Writer, data []float64, ext core.Extents, opts Options) error {
	img := Gray16(data, ext, opts)
	if opts.PNGBlur > 0 {
		img = Blur(img, opts.PNGBlur)
	}
	return png.Encode(w, img)
}
