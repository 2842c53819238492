package noise

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/transform"
)

// Errors returned by the spectral pipeline.
var (
	ErrSpectrumReleased = errors.New("noise: spectrum already released")
	ErrLengthMismatch   = errors.New("noise: buffer length mismatch")
	ErrTransform        = errors.New("noise: transform failed")
	ErrUnsupportedDims  = errors.New("noise: operation unsupported for dimensionality")
)

// Spectrum is the Hermitian-packed frequency-domain representation of a
// real field. It is created by [Decompose] and consumed by
// [Spectrum.Reproject] or [Spectrum.Release].
type Spectrum struct {
	engine transform.Engine
	ext    core.Extents
	bins   []complex128
}

// Decompose transforms signal (row-major, ext.Total() samples) into a new
// spectrum. signal is not modified. A nil engine selects the default engine.
func Decompose(engine transform.Engine, signal []float64, ext core.Extents) (*Spectrum, error) {
	if err := ext.Validate(); err != nil {
		return nil, err
	}
	if len(signal) != ext.Total() {
		return nil, fmt.Errorf("%w: signal has %d samples, extents %v need %d",
			ErrLengthMismatch, len(signal), ext, ext.Total())
	}
	if engine == nil {
		engine = transform.NewAlgoFFT()
	}

	s := &Spectrum{
		engine: engine,
		ext:    append(core.Extents(nil), ext...),
		bins:   make([]complex128, ext.SpectrumLen()),
	}
	if err := engine.ForwardRealToComplex(s.bins, signal, s.ext); err != nil {
		return nil, fmt.Errorf("%w: forward %s: %w", ErrTransform, engine.Name(), err)
	}
	return s, nil
}

// Extents returns the extents of the real field the spectrum describes.
func (s *Spectrum) Extents() core.Extents { return s.ext }

// Released reports whether the bins have been handed back.
func (s *Spectrum) Released() bool { return s.bins == nil }

// Bins returns the live packed bins, laid out row-major over
// Extents().SpectrumExtents().
func (s *Spectrum) Bins() ([]complex128, error) {
	if s.Released() {
		return nil, ErrSpectrumReleased
	}
	return s.bins, nil
}

// DC returns the mean level encoded in the zero-frequency bin.
func (s *Spectrum) DC() (float64, error) {
	if s.Released() {
		return 0, ErrSpectrumReleased
	}
	return real(s.bins[0]) / float64(s.ext.Total()), nil
}

// Reproject inverse-transforms the spectrum into dst, divides by the sample
// count and releases the spectrum. dst must hold Extents().Total() samples.
// The spectrum is released even when the transform fails.
func (s *Spectrum) Reproject(dst []float64) error {
	if s.Released() {
		return ErrSpectrumReleased
	}
	if len(dst) != s.ext.Total() {
		return fmt.Errorf("%w: destination has %d samples, extents %v need %d",
			ErrLengthMismatch, len(dst), s.ext, s.ext.Total())
	}
	defer s.Release()

	if err := s.engine.InverseComplexToReal(dst, s.bins, s.ext); err != nil {
		return fmt.Errorf("%w: inverse %s: %w", ErrTransform, s.engine.Name(), err)
	}
	vecmath.ScaleBlockInPlace(dst, 1/float64(len(dst)))
	for i, v := range dst {
		dst[i] = core.FlushDenormals(v)
	}
	return nil
}

// Release drops the bins without reprojecting. Releasing twice is a no-op.
func (s *Spectrum) Release() {
	s.bins = nil
}

// forEachBin visits every packed bin with its per-axis index.
func (s *Spectrum) forEachBin(fn func(flat int, idx []int)) {
	packed := s.ext.SpectrumExtents()
	idx := make([]int, len(packed))
	for flat := range s.bins {
		fn(flat, idx)
		for a := len(idx) - 1; a >= 0; a-- {
			idx[a]++
			if idx[a] < packed[a] {
				break
			}
			idx[a] = 0
		}
	}
}
