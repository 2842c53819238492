// Package frequency measures the spectral shape of noise fields: a radially
// averaged power profile and descriptors computed from it.
package frequency

import (
	"errors"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/transform"
)

// ErrTooFewRadii is returned when a profile has fewer than two usable
// radii to fit.
var ErrTooFewRadii = errors.New("frequency: too few radii for a fit")

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 2*n)
	return buf.data[:n], buf.data[n : 2*n], buf
}

// Power returns |X[k]|^2 for each bin.
func Power(bins []complex128) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := getScratch(len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Profile is a radially averaged power spectrum. Power[r] is the mean
// |X|^2 over all full-spectrum bins whose distance from DC rounds to r.
// Power[0] is the DC power.
type Profile struct {
	Power  []float64
	Counts []int
}

// RadialPowerSpectrum decomposes data and averages its power by radius.
// Mirrored bins that the packed spectrum stores once are counted twice.
// A nil engine selects the default engine.
func RadialPowerSpectrum(engine transform.Engine, data []float64, ext core.Extents) (Profile, error) {
	spec, err := noise.Decompose(engine, data, ext)
	if err != nil {
		return Profile{}, err
	}
	defer spec.Release()

	bins, err := spec.Bins()
	if err != nil {
		return Profile{}, err
	}
	power := Power(bins)

	maxR2 := 0
	for _, n := range ext {
		maxR2 += (n / 2) * (n / 2)
	}
	size := int(math.Round(math.Sqrt(float64(maxR2)))) + 1
	sums := make([]float64, size)
	counts := make([]int, size)

	packed := ext.SpectrumExtents()
	last := len(ext) - 1
	nLast := ext[last]
	idx := make([]int, len(packed))
	for flat := range power {
		r2 := 0
		for a := 0; a < last; a++ {
			w := core.WrapIndex(idx[a], ext[a])
			r2 += w * w
		}
		j := idx[last]
		r2 += j * j

		weight := 2
		if j == 0 || 2*j == nLast {
			weight = 1
		}
		r := int(math.Round(math.Sqrt(float64(r2))))
		sums[r] += float64(weight) * power[flat]
		counts[r] += weight

		for a := last; a >= 0; a-- {
			idx[a]++
			if idx[a] < packed[a] {
				break
			}
			idx[a] = 0
		}
	}

	for r, c := range counts {
		if c > 0 {
			sums[r] /= float64(c)
		}
	}
	return Profile{Power: sums, Counts: counts}, nil
}

// Slope fits log(Power[r]) against log(r) by least squares over every
// radius r >= 1 that has bins and nonzero power.
func Slope(p Profile) (float64, error) {
	xs := make([]float64, 0, len(p.Power))
	ys := make([]float64, 0, len(p.Power))
	for r := 1; r < len(p.Power); r++ {
		if r < len(p.Counts) && p.Counts[r] == 0 {
			continue
		}
		if p.Power[r] <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(r)))
		ys = append(ys, math.Log(p.Power[r]))
	}
	if len(xs) < 2 {
		return 0, ErrTooFewRadii
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta, nil
}

// EstimateExponent converts the fitted power slope to the amplitude
// exponent used by the shifter, which scales bins by roughly r^exponent.
func EstimateExponent(p Profile) (float64, error) {
	s, err := Slope(p)
	if err != nil {
		return 0, err
	}
	return s / 2, nil
}

// Stats summarizes a radial profile. Radii are in bins.
type Stats struct {
	Radii    int
	DC       float64 // DC power
	Peak     float64
	PeakAt   int     // radius of the strongest non-DC band
	Centroid float64 // power-weighted mean radius
	Flatness float64 // 0..1, 1 for white
	Rolloff  float64 // radius below which 85% of the non-DC power lies
	Slope    float64
	Exponent float64
}

// Calculate derives the summary of a profile. Slope and Exponent are zero
// when the profile is too short to fit.
func Calculate(p Profile) Stats {
	n := len(p.Power)
	if n == 0 {
		return Stats{}
	}

	s := Stats{Radii: n, DC: p.Power[0]}
	var sum, weighted float64
	for r := 1; r < n; r++ {
		v := p.Power[r]
		sum += v
		weighted += float64(r) * v
		if v > s.Peak {
			s.Peak = v
			s.PeakAt = r
		}
	}
	if sum > 0 {
		s.Centroid = weighted / sum
	}
	s.Flatness = Flatness(p.Power)
	s.Rolloff = rolloff(p.Power, 0.85, sum)

	if slope, err := Slope(p); err == nil {
		s.Slope = slope
		s.Exponent = slope / 2
	}
	return s
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1,
// the geometric over the arithmetic mean of values[1:]. Any zero yields 0.
func Flatness(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	sumLin := 0.0
	sumLog := 0.0
	for _, v := range values[1:] {
		if v <= 0 {
			return 0
		}
		sumLin += v
		sumLog += math.Log(v)
	}

	bins := float64(n - 1)
	return math.Exp(sumLog/bins) / (sumLin / bins)
}

func rolloff(values []float64, percent, total float64) float64 {
	if len(values) < 2 || total == 0 {
		return 0
	}
	threshold := percent * total
	cum := 0.0
	for r := 1; r < len(values); r++ {
		cum += values[r]
		if cum >= threshold {
			return float64(r)
		}
	}
	return float64(len(values) - 1)
}
