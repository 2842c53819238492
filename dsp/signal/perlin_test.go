package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-noise/dsp/core"
)

func TestPerlinFieldDeterministic(t *testing.T) {
	for _, ext := range []core.Extents{{64}, {16, 16}, {8, 8, 8}} {
		a := make([]float64, ext.Total())
		b := make([]float64, ext.Total())
		require.NoError(t, PerlinField(a, ext, 4.5, 7))
		require.NoError(t, PerlinField(b, ext, 4.5, 7))
		require.Equal(t, a, b)

		lo, hi := Range(a)
		require.Less(t, lo, hi, "field %v is flat", ext)
		require.GreaterOrEqual(t, lo, -2.0)
		require.LessOrEqual(t, hi, 2.0)
	}
}

func TestPerlinFieldIsSmooth(t *testing.T) {
	ext := core.Extents{256}
	data := make([]float64, ext.Total())
	require.NoError(t, PerlinField(data, ext, 64, 1))

	// Neighbouring samples of smooth noise differ far less than the range.
	lo, hi := Range(data)
	maxStep := 0.0
	for i := 1; i < len(data); i++ {
		maxStep = math.Max(maxStep, math.Abs(data[i]-data[i-1]))
	}
	require.Less(t, maxStep, (hi-lo)/2)
}

func TestPerlinFieldErrors(t *testing.T) {
	require.ErrorIs(t, PerlinField(make([]float64, 3), core.Extents{4}, 8, 1), ErrInvalidRange)
	require.ErrorIs(t, PerlinField(make([]float64, 4), core.Extents{4}, 0, 1), ErrInvalidRange)
	require.ErrorIs(t, PerlinField(nil, core.Extents{0}, 8, 1), core.ErrInvalidExtents)
}

func TestSourceFillField(t *testing.T) {
	ext := core.Extents{8, 8}
	s := NewSource(WithSeed(3), WithPerlinScale(5))

	got := make([]float64, ext.Total())
	require.NoError(t, s.FillField(got, ext, Perlin))
	want := make([]float64, ext.Total())
	require.NoError(t, PerlinField(want, ext, 5, 3))
	require.Equal(t, want, got)

	require.NoError(t, s.FillField(got, ext, Gaussian))
}
