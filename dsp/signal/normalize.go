package signal

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Range returns the smallest and largest sample. Empty input yields zeros.
func Range(data []float64) (min, max float64) {
	if len(data) == 0 {
		return 0, 0
	}
	return floats.Min(data), floats.Max(data)
}

// Normalizer maps samples from [Min, Max] onto the unit interval.
type Normalizer struct {
	Min float64
	Max float64
}

// NewNormalizer spans the range of data.
func NewNormalizer(data []float64) Normalizer {
	lo, hi := Range(data)
	return Normalizer{Min: lo, Max: hi}
}

// Unit maps v to [0, 1]. A flat range maps everything to 0.
func (n Normalizer) Unit(v float64) float64 {
	span := n.Max - n.Min
	if span <= 0 {
		return 0
	}
	return core.Clamp((v-n.Min)/span, 0, 1)
}

// Quantize maps v to an integer level in [0, maxLevel].
func (n Normalizer) Quantize(v float64, maxLevel int) int {
	q := int((float64(maxLevel) + 0.999) * n.Unit(v))
	if q > maxLevel {
		return maxLevel
	}
	return q
}

// ZeroMean subtracts the arithmetic mean from every sample and returns it.
func ZeroMean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	mean := stat.Mean(data, nil)
	floats.AddConst(-mean, data)
	return mean
}

// Blur2D applies iterations of a five-point Laplacian smoothing step to the
// interior of an nx by ny field (row-major, y fastest). Border samples are
// left unchanged.
func Blur2D(data []float64, nx, ny, iterations int) {
	if nx < 3 || ny < 3 || len(data) < nx*ny {
		return
	}
	temp := make([]float64, nx*ny)
	for iter := 0; iter < iterations; iter++ {
		copy(temp, data[:nx*ny])
		for i := 1; i < nx-1; i++ {
			for j := 1; j < ny-1; j++ {
				idx := i*ny + j
				lap := temp[idx+1] + temp[idx-1] + temp[idx+ny] + temp[idx-ny] - 4*temp[idx]
				data[idx] += lap / 16
			}
		}
	}
}
