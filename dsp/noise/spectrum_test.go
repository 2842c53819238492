package noise

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/transform"
	"github.com/cwbudde/algo-noise/internal/testutil"
)

var testShapes = []core.Extents{{16}, {8, 8}, {4, 8}, {4, 4, 8}}

func engines() []transform.Engine {
	return []transform.Engine{transform.NewAlgoFFT(), transform.NewGonum()}
}

func TestRoundTripIdentity(t *testing.T) {
	for _, eng := range engines() {
		for _, ext := range testShapes {
			t.Run(eng.Name()+"/"+ext.String(), func(t *testing.T) {
				src := testutil.DeterministicNoise(5, 1, ext.Total())

				spec, err := Decompose(eng, src, ext)
				if err != nil {
					t.Fatalf("Decompose() error = %v", err)
				}
				if _, err := Shift(spec, ShiftParams{}); err != nil {
					t.Fatalf("Shift() error = %v", err)
				}
				if err := accentuateField(spec, nil); err != nil {
					t.Fatalf("Accentuate() error = %v", err)
				}

				out := make([]float64, ext.Total())
				if err := spec.Reproject(out); err != nil {
					t.Fatalf("Reproject() error = %v", err)
				}
				testutil.RequireSliceNearlyEqual(t, out, src, 1e-12)
			})
		}
	}
}

// accentuateField skips the accentuator for 1D spectra.
func accentuateField(s *Spectrum, planes []Plane) error {
	if s.Extents().Dims() == 1 {
		return nil
	}
	return Accentuate(s, planes)
}

func TestDecomposeDoesNotMutateSignal(t *testing.T) {
	ext := core.Extents{8, 8}
	src := testutil.DeterministicNoise(9, 1, ext.Total())
	keep := append([]float64(nil), src...)

	spec, err := Decompose(nil, src, ext)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	defer spec.Release()

	testutil.RequireSliceNearlyEqual(t, src, keep, 0)
	bins, err := spec.Bins()
	if err != nil {
		t.Fatalf("Bins() error = %v", err)
	}
	if len(bins) != ext.SpectrumLen() {
		t.Fatalf("len(bins) = %d, want %d", len(bins), ext.SpectrumLen())
	}
}

func TestDCPreservation(t *testing.T) {
	configs := []struct {
		name   string
		params ShiftParams
		planes []Plane
	}{
		{name: "brown", params: ShiftParams{Exponent: -2}},
		{name: "violet", params: ShiftParams{Exponent: 2}},
		{name: "band", params: ShiftParams{Exponent: -1, LongestWavelength: 0.5, ShortestWavelength: 0.1}},
		{name: "planes", params: ShiftParams{Exponent: -1}, planes: []Plane{NewPlane(1, 1, 0, 0.3, 5)}},
	}

	for _, eng := range engines() {
		for _, ext := range []core.Extents{{8, 8}, {4, 4, 4}} {
			for _, cfg := range configs {
				t.Run(eng.Name()+"/"+ext.String()+"/"+cfg.name, func(t *testing.T) {
					src := testutil.DeterministicNoise(21, 1, ext.Total())
					for i := range src {
						src[i] += 0.75
					}
					mean := testutil.Mean(src)

					spec, err := Decompose(eng, src, ext)
					if err != nil {
						t.Fatalf("Decompose() error = %v", err)
					}
					dc, err := Shift(spec, cfg.params)
					if err != nil {
						t.Fatalf("Shift() error = %v", err)
					}
					if err := Accentuate(spec, cfg.planes); err != nil {
						t.Fatalf("Accentuate() error = %v", err)
					}
					if !core.NearlyEqual(dc, mean, 1e-10) {
						t.Fatalf("dc = %v, want mean %v", dc, mean)
					}

					out := make([]float64, ext.Total())
					if err := spec.Reproject(out); err != nil {
						t.Fatalf("Reproject() error = %v", err)
					}
					if got := testutil.Mean(out); !core.NearlyEqual(got, mean, 1e-10) {
						t.Fatalf("output mean = %v, want %v", got, mean)
					}
				})
			}
		}
	}
}

func TestCrossedBandIsConstant(t *testing.T) {
	for _, ext := range []core.Extents{{32}, {8, 16}, {4, 4, 4}} {
		src := testutil.DeterministicNoise(3, 1, ext.Total())
		mean := testutil.Mean(src)

		spec, err := Decompose(nil, src, ext)
		if err != nil {
			t.Fatalf("Decompose() error = %v", err)
		}
		if _, err := Shift(spec, ShiftParams{Exponent: -1, LongestWavelength: 0.1, ShortestWavelength: 0.5}); err != nil {
			t.Fatalf("Shift() error = %v", err)
		}

		bins, _ := spec.Bins()
		for i, b := range bins[1:] {
			if b != 0 {
				t.Fatalf("%v: bin %d = %v, want 0", ext, i+1, b)
			}
		}

		out := make([]float64, ext.Total())
		if err := spec.Reproject(out); err != nil {
			t.Fatalf("Reproject() error = %v", err)
		}
		testutil.RequireConstant(t, out, mean, 1e-12)
	}
}

func TestReleasedSpectrum(t *testing.T) {
	ext := core.Extents{4, 4}
	spec, err := Decompose(nil, make([]float64, ext.Total()), ext)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	if err := spec.Reproject(make([]float64, ext.Total())); err != nil {
		t.Fatalf("Reproject() error = %v", err)
	}
	if !spec.Released() {
		t.Fatal("Reproject must release the spectrum")
	}

	if err := spec.Reproject(make([]float64, ext.Total())); !errors.Is(err, ErrSpectrumReleased) {
		t.Fatalf("second Reproject() error = %v, want ErrSpectrumReleased", err)
	}
	if _, err := Shift(spec, ShiftParams{}); !errors.Is(err, ErrSpectrumReleased) {
		t.Fatalf("Shift() error = %v, want ErrSpectrumReleased", err)
	}
	if err := Accentuate(spec, nil); !errors.Is(err, ErrSpectrumReleased) {
		t.Fatalf("Accentuate() error = %v, want ErrSpectrumReleased", err)
	}
	if _, err := spec.Bins(); !errors.Is(err, ErrSpectrumReleased) {
		t.Fatalf("Bins() error = %v, want ErrSpectrumReleased", err)
	}
	if _, err := spec.DC(); !errors.Is(err, ErrSpectrumReleased) {
		t.Fatalf("DC() error = %v, want ErrSpectrumReleased", err)
	}
	spec.Release()
}

func TestDecomposeErrors(t *testing.T) {
	if _, err := Decompose(nil, make([]float64, 15), core.Extents{4, 4}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	if _, err := Decompose(nil, nil, core.Extents{0, 4}); !errors.Is(err, core.ErrInvalidExtents) {
		t.Fatalf("error = %v, want ErrInvalidExtents", err)
	}
	if _, err := Decompose(nil, nil, core.Extents{1, 1, 1, 1}); !errors.Is(err, core.ErrUnsupportedDims) {
		t.Fatalf("error = %v, want ErrUnsupportedDims", err)
	}
}

func TestReprojectLengthMismatchKeepsSpectrum(t *testing.T) {
	ext := core.Extents{8}
	spec, err := Decompose(nil, make([]float64, 8), ext)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	if err := spec.Reproject(make([]float64, 4)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	if spec.Released() {
		t.Fatal("a rejected destination must not release the spectrum")
	}
	spec.Release()
}

type failingEngine struct {
	transform.Engine
	failForward bool
}

var errEngine = errors.New("engine exploded")

func (f failingEngine) Name() string { return "failing" }

func (f failingEngine) ForwardRealToComplex(dst []complex128, src []float64, ext core.Extents) error {
	if f.failForward {
		return errEngine
	}
	return f.Engine.ForwardRealToComplex(dst, src, ext)
}

func (f failingEngine) InverseComplexToReal([]float64, []complex128, core.Extents) error {
	return errEngine
}

func TestEngineFailuresSurface(t *testing.T) {
	ext := core.Extents{8, 8}
	src := testutil.DeterministicNoise(1, 1, ext.Total())

	spec, err := Decompose(failingEngine{Engine: transform.NewGonum(), failForward: true}, src, ext)
	if !errors.Is(err, ErrTransform) || !errors.Is(err, errEngine) {
		t.Fatalf("forward error = %v, want ErrTransform wrapping engine error", err)
	}
	if spec != nil {
		t.Fatal("failed decomposition must not return a spectrum")
	}

	spec, err = Decompose(failingEngine{Engine: transform.NewGonum()}, src, ext)
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}
	if err := spec.Reproject(make([]float64, ext.Total())); !errors.Is(err, ErrTransform) {
		t.Fatalf("inverse error = %v, want ErrTransform", err)
	}
	if !spec.Released() {
		t.Fatal("spectrum must be released after a failed reprojection")
	}
}
