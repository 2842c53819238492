package noise

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Convention selects how the radial index and the exponent are combined.
type Convention int

const (
	// ConventionRadial uses d = 1 + sum of squared wrapped indices and scales
	// by d^(exponent/2), so the exponent acts on the Euclidean frequency.
	ConventionRadial Convention = iota

	// ConventionLinear is the 1D in-place convention: d = 1 + n/2 - k and
	// the scale is d^exponent. Only valid for one-dimensional spectra.
	ConventionLinear
)

// String implements fmt.Stringer.
func (c Convention) String() string {
	switch c {
	case ConventionRadial:
		return "radial"
	case ConventionLinear:
		return "linear"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ShiftParams configures the power-law shifter and band-pass filter.
// Wavelength bounds <= 0 are disabled.
type ShiftParams struct {
	Exponent           float64
	LongestWavelength  float64
	ShortestWavelength float64
	Convention         Convention
}

// passes reports whether a bin with the given wavelength survives the
// band-pass bounds.
func (p ShiftParams) passes(wavelength float64) bool {
	if p.LongestWavelength > 0 && wavelength > p.LongestWavelength {
		return false
	}
	if p.ShortestWavelength > 0 && wavelength < p.ShortestWavelength {
		return false
	}
	return true
}

// radialIndex returns 1 + the squared wrapped distance of a packed bin from
// the origin. The last axis is packed and never wraps.
func radialIndex(idx []int, ext core.Extents) float64 {
	last := len(idx) - 1
	d := 1 + idx[last]*idx[last]
	for a := 0; a < last; a++ {
		w := core.WrapIndex(idx[a], ext[a])
		d += w * w
	}
	return float64(d)
}

// Shift scales every non-DC bin by a power of its radial index and zeroes
// bins outside the wavelength band. It returns the DC level (bin 0 over the
// sample count), which is never modified. Reapplying a nonzero exponent
// compounds.
func Shift(s *Spectrum, p ShiftParams) (float64, error) {
	if s.Released() {
		return 0, ErrSpectrumReleased
	}

	switch p.Convention {
	case ConventionRadial:
		if p.Exponent != 0 || p.LongestWavelength > 0 || p.ShortestWavelength > 0 {
			half := p.Exponent / 2
			s.forEachBin(func(flat int, idx []int) {
				if flat == 0 {
					return
				}
				d := radialIndex(idx, s.ext)
				if !p.passes(1 / math.Sqrt(d-1)) {
					s.bins[flat] = 0
					return
				}
				if half != 0 {
					s.bins[flat] *= complex(math.Pow(d, half), 0)
				}
			})
		}

	case ConventionLinear:
		if s.ext.Dims() != 1 {
			return 0, fmt.Errorf("%w: linear convention needs 1 dimension, got %d",
				ErrUnsupportedDims, s.ext.Dims())
		}
		n := s.ext[0]
		for k := 1; k < len(s.bins); k++ {
			d := float64(1 + n/2 - k)
			if !p.passes(1 / d) {
				s.bins[k] = 0
				continue
			}
			if p.Exponent != 0 {
				s.bins[k] *= complex(math.Pow(d, p.Exponent), 0)
			}
		}

	default:
		return 0, fmt.Errorf("noise: unknown convention %v", p.Convention)
	}

	return s.DC()
}
