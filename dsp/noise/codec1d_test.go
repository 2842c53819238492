package noise

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/transform"
	"github.com/cwbudde/algo-noise/internal/testutil"
)

func TestShiftSpectrum1DWhiteReflectsOddSamples(t *testing.T) {
	for _, eng := range engines() {
		t.Run(eng.Name(), func(t *testing.T) {
			data := []float64{1, 2, 3, 4}
			dc, err := ShiftSpectrum1D(eng, data, ShiftParams{})
			if err != nil {
				t.Fatalf("ShiftSpectrum1D() error = %v", err)
			}
			if math.Abs(dc-2.5) > 1e-12 {
				t.Fatalf("dc = %v, want 2.5", dc)
			}
			testutil.RequireSliceNearlyEqual(t, data, []float64{1, 3, 3, 1}, 1e-12)
		})
	}
}

func TestShiftSpectrum1DKeepsConstant(t *testing.T) {
	for _, exp := range []float64{-2, -1, 1, 2} {
		data := testutil.DC(2, 32)
		dc, err := ShiftSpectrum1D(nil, data, ShiftParams{Exponent: exp})
		if err != nil {
			t.Fatalf("exponent %v: error = %v", exp, err)
		}
		if math.Abs(dc-2) > 1e-12 {
			t.Fatalf("exponent %v: dc = %v, want 2", exp, dc)
		}
		testutil.RequireConstant(t, data, 2, 1e-12)
	}
}

func TestShiftSpectrum1DIgnoresConvention(t *testing.T) {
	a := testutil.DeterministicNoise(4, 1, 64)
	b := append([]float64(nil), a...)

	if _, err := ShiftSpectrum1D(nil, a, ShiftParams{Exponent: -1}); err != nil {
		t.Fatal(err)
	}
	if _, err := ShiftSpectrum1D(nil, b, ShiftParams{Exponent: -1, Convention: ConventionRadial}); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, a, b, 0)
	testutil.RequireFinite(t, a)
}

func TestShiftSpectrum1DOddLength(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5}
	dc, err := ShiftSpectrum1D(transform.NewGonum(), data, ShiftParams{})
	if err != nil {
		t.Fatalf("ShiftSpectrum1D() error = %v", err)
	}
	if math.Abs(dc-2.8) > 1e-12 {
		t.Fatalf("dc = %v, want 2.8", dc)
	}
	testutil.RequireSliceNearlyEqual(t, data, []float64{3, 4.6, 4, 4.6, 5}, 1e-12)
}

func TestShiftSpectrum1DEmpty(t *testing.T) {
	if _, err := ShiftSpectrum1D(nil, nil, ShiftParams{}); !errors.Is(err, core.ErrInvalidExtents) {
		t.Fatalf("error = %v, want ErrInvalidExtents", err)
	}
}

func TestComplex1D(t *testing.T) {
	for _, eng := range engines() {
		t.Run(eng.Name(), func(t *testing.T) {
			data := []float64{1, 2, 3, 4}
			if err := Forward1D(eng, data); err != nil {
				t.Fatalf("Forward1D() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, data, []float64{10, -2, -2, -2}, 1e-12)

			// Only the real parts survive, so the inverse returns N times
			// the even part of the input.
			if err := Inverse1D(eng, data); err != nil {
				t.Fatalf("Inverse1D() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, data, []float64{4, 12, 12, 12}, 1e-12)
		})
	}

	if err := Forward1D(nil, []float64{}); err == nil {
		t.Fatal("expected error for empty input")
	}
}
