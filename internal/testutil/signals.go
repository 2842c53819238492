package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given flat position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// PlaneWave generates cos(2*pi*sum(k_a*x_a/n_a)) over a field, a single
// spectral line at wave vector k (one entry per axis).
func PlaneWave(ext core.Extents, k []int) []float64 {
	out := make([]float64, ext.Total())
	strides := ext.Strides()
	for i := range out {
		phase := 0.0
		for a := range ext {
			x := (i / strides[a]) % ext[a]
			phase += float64(k[a]*x) / float64(ext[a])
		}
		out[i] = math.Cos(2 * math.Pi * phase)
	}
	return out
}

// Mean returns the arithmetic mean of data.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}
