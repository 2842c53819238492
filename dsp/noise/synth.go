package noise

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/signal"
	"github.com/cwbudde/algo-noise/dsp/transform"
)

// Params describes how a white-noise field is colored.
type Params struct {
	// Color supplies the exponent unless ExplicitExponent is set.
	Color            Color
	Exponent         float64
	ExplicitExponent bool

	// Wavelength band; bounds <= 0 are disabled.
	LongestWavelength  float64
	ShortestWavelength float64

	// Planes are applied to 2D and 3D fields only.
	Planes []Plane

	// ZeroMean subtracts the mean after shaping.
	ZeroMean bool
}

// EffectiveExponent returns the exponent that will be applied.
func (p Params) EffectiveExponent() float64 {
	if p.ExplicitExponent {
		return p.Exponent
	}
	return p.Color.Exponent()
}

func (p Params) banded() bool {
	return p.LongestWavelength > 0 || p.ShortestWavelength > 0
}

// Result reports what Synthesize did.
type Result struct {
	// Shaped is false when the field was left white.
	Shaped bool
	// DC is the mean level seen by the shifter.
	DC float64
}

// Synthesizer runs the full coloring pipeline on caller-owned fields.
type Synthesizer struct {
	engine transform.Engine
	logger *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithEngine sets the transform engine.
func WithEngine(engine transform.Engine) Option {
	return func(s *Synthesizer) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSynthesizer creates a synthesizer using the default engine and a
// discarding logger unless overridden.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		engine: transform.NewAlgoFFT(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Engine returns the transform engine in use.
func (s *Synthesizer) Engine() transform.Engine { return s.engine }

// Synthesize colors data in place. One-dimensional fields go through
// [ShiftSpectrum1D]; two- and three-dimensional fields run decompose,
// shift, accentuate and reproject. White noise without a band or planes is
// left untouched.
func (s *Synthesizer) Synthesize(data []float64, ext core.Extents, p Params) (Result, error) {
	if err := ext.Validate(); err != nil {
		return Result{}, err
	}
	if len(data) != ext.Total() {
		return Result{}, fmt.Errorf("%w: field has %d samples, extents %v need %d",
			ErrLengthMismatch, len(data), ext, ext.Total())
	}

	exp := p.EffectiveExponent()
	shift := ShiftParams{
		Exponent:           exp,
		LongestWavelength:  p.LongestWavelength,
		ShortestWavelength: p.ShortestWavelength,
	}

	var res Result
	var err error
	switch ext.Dims() {
	case 1:
		if len(p.Planes) > 0 {
			s.logger.Debug("preference planes ignored for 1D field", "planes", len(p.Planes))
		}
		if p.Color != White || p.ExplicitExponent || p.banded() {
			res.Shaped = true
			res.DC, err = ShiftSpectrum1D(s.engine, data, shift)
		}
	default:
		if p.Color != White || p.ExplicitExponent || p.banded() || len(p.Planes) > 0 {
			res.Shaped = true
			res.DC, err = s.shapeField(data, ext, shift, p.Planes)
		}
	}
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug("field synthesized",
		"extents", ext.String(),
		"engine", s.engine.Name(),
		"exponent", exp,
		"shaped", res.Shaped,
		"planes", len(p.Planes),
		"dc", res.DC,
	)

	if p.ZeroMean {
		signal.ZeroMean(data)
	}
	return res, nil
}

func (s *Synthesizer) shapeField(data []float64, ext core.Extents, shift ShiftParams, planes []Plane) (float64, error) {
	spec, err := Decompose(s.engine, data, ext)
	if err != nil {
		return 0, err
	}
	defer spec.Release()

	dc, err := Shift(spec, shift)
	if err != nil {
		return 0, err
	}
	if err := Accentuate(spec, planes); err != nil {
		return 0, err
	}
	if err := spec.Reproject(data); err != nil {
		return 0, err
	}
	return dc, nil
}
