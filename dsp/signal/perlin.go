package signal

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// DefaultPerlinScale is the number of samples per Perlin lattice cell.
const DefaultPerlinScale = 16

// Perlin generator parameters: persistence, lacunarity and octave count.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// PerlinField fills dst (row-major over ext) with Perlin noise sampled at
// the field coordinates divided by scale. The result is smooth and roughly
// in [-1, 1]; lattice points themselves are zero, so scale should not be 1.
func PerlinField(dst []float64, ext core.Extents, scale float64, seed int64) error {
	if err := ext.Validate(); err != nil {
		return err
	}
	if len(dst) != ext.Total() {
		return fmt.Errorf("%w: destination has %d samples, extents %v need %d",
			ErrInvalidRange, len(dst), ext, ext.Total())
	}
	if !(scale > 0) {
		return fmt.Errorf("%w: perlin scale %g", ErrInvalidRange, scale)
	}

	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	strides := ext.Strides()
	var x [core.MaxDims]float64
	for i := range dst {
		for a := range ext {
			x[a] = float64((i/strides[a])%ext[a]) / scale
		}
		switch len(ext) {
		case 1:
			dst[i] = p.Noise1D(x[0])
		case 2:
			dst[i] = p.Noise2D(x[0], x[1])
		default:
			dst[i] = p.Noise3D(x[0], x[1], x[2])
		}
	}
	return nil
}
