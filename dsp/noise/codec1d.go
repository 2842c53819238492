package noise

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/transform"
)

// ShiftSpectrum1D colors a 1D signal in place: forward transform, shift with
// [ConventionLinear] (the Convention field of p is ignored), inverse
// transform and normalization. Every odd sample is then reflected about the
// DC level, data[i] = 2*dc - data[i], which undoes the frequency reversal of
// the linear convention. It returns the DC level.
func ShiftSpectrum1D(engine transform.Engine, data []float64, p ShiftParams) (float64, error) {
	ext, err := core.NewExtents(len(data))
	if err != nil {
		return 0, err
	}

	s, err := Decompose(engine, data, ext)
	if err != nil {
		return 0, err
	}

	p.Convention = ConventionLinear
	dc, err := Shift(s, p)
	if err != nil {
		s.Release()
		return 0, err
	}

	if err := s.Reproject(data); err != nil {
		return 0, err
	}

	for i := 1; i < len(data); i += 2 {
		data[i] = 2*dc - data[i]
	}
	return dc, nil
}

// Forward1D replaces data with the real part of its complex forward DFT.
func Forward1D(engine transform.Engine, data []float64) error {
	return complex1D(engine, data, false)
}

// Inverse1D replaces data with the real part of its unnormalized complex
// inverse DFT.
func Inverse1D(engine transform.Engine, data []float64) error {
	return complex1D(engine, data, true)
}

func complex1D(engine transform.Engine, data []float64, inverse bool) error {
	if _, err := core.NewExtents(len(data)); err != nil {
		return err
	}
	if engine == nil {
		engine = transform.NewAlgoFFT()
	}

	buf := make([]complex128, len(data))
	for i, v := range data {
		buf[i] = complex(v, 0)
	}

	var err error
	if inverse {
		err = engine.InverseComplex(buf)
	} else {
		err = engine.ForwardComplex(buf)
	}
	if err != nil {
		return fmt.Errorf("%w: complex %s: %w", ErrTransform, engine.Name(), err)
	}

	for i := range data {
		data[i] = real(buf[i])
	}
	return nil
}
