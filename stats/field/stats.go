// Package field summarizes the sample distribution of noise fields.
package field

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Stats holds sample statistics of a field. Positions are flat row-major
// indices; use [Position] to split them per axis.
type Stats struct {
	Length   int
	Mean     float64
	RMS      float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Peak     float64 // max(|Max|, |Min|)
	Range    float64 // Max - Min
	Energy   float64 // sum of squares
	Variance float64 // population variance
	StdDev   float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
}

// Calculate computes every statistic in one pass.
func Calculate(data []float64) Stats {
	var s StreamingStats
	s.Update(data)
	return s.Result()
}

// StreamingStats accumulates field statistics block by block. Welford's
// update keeps the higher moments stable, and results match [Calculate]
// bit for bit regardless of how the samples are split.
type StreamingStats struct {
	n      int
	mean   float64
	m2     float64
	m3     float64
	m4     float64
	sumSq  float64
	maxVal float64
	maxPos int
	minVal float64
	minPos int
}

// NewStreamingStats creates an empty accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples.
func (s *StreamingStats) Update(samples []float64) {
	for _, x := range samples {
		pos := s.n
		s.n++
		ni := float64(s.n)

		delta := x - s.mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(pos)

		// M4 before M3 before M2.
		s.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
		s.m3 += term1*deltaN*(float64(pos)-1) - 3*deltaN*s.m2
		s.m2 += term1
		s.mean += deltaN

		s.sumSq += x * x

		if pos == 0 || x > s.maxVal {
			s.maxVal = x
			s.maxPos = pos
		}
		if pos == 0 || x < s.minVal {
			s.minVal = x
			s.minPos = pos
		}
	}
}

// Len returns the number of samples seen.
func (s *StreamingStats) Len() int { return s.n }

// Result computes the statistics of everything seen so far. An empty
// accumulator yields the zero Stats.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	nf := float64(s.n)
	variance := s.m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (s.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (s.m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:   s.n,
		Mean:     s.mean,
		RMS:      math.Sqrt(s.sumSq / nf),
		Min:      s.minVal,
		MinPos:   s.minPos,
		Max:      s.maxVal,
		MaxPos:   s.maxPos,
		Peak:     math.Max(math.Abs(s.maxVal), math.Abs(s.minVal)),
		Range:    s.maxVal - s.minVal,
		Energy:   s.sumSq,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// Reset clears the accumulator for reuse.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}

// Position splits a flat row-major index into per-axis indices.
func Position(ext core.Extents, flat int) []int {
	idx := make([]int, len(ext))
	for a := len(ext) - 1; a >= 0; a-- {
		idx[a] = flat % ext[a]
		flat /= ext[a]
	}
	return idx
}

// Rows summarizes each slice along the first axis of a 2D or 3D field,
// which shows drift across the field. A 1D field yields one summary.
func Rows(data []float64, ext core.Extents) []Stats {
	if len(ext) == 0 || len(data) != ext.Total() {
		return nil
	}
	if len(ext) == 1 {
		return []Stats{Calculate(data)}
	}
	step := ext.Total() / ext[0]
	out := make([]Stats, ext[0])
	for i := range out {
		out[i] = Calculate(data[i*step : (i+1)*step])
	}
	return out
}
