package signal

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed = 23516

// Errors returned by source configuration and generation.
var (
	ErrUnknownGenerator    = errors.New("signal: unknown generator")
	ErrUnknownDistribution = errors.New("signal: unknown distribution")
	ErrInvalidRange        = errors.New("signal: invalid range")
)

// Generator selects the pseudo-random engine behind a Source.
type Generator int

const (
	// GeneratorMersenne is the 32-bit Mersenne twister (MT19937).
	GeneratorMersenne Generator = iota
	// GeneratorLibrary is the standard library math/rand source.
	GeneratorLibrary
)

// String implements fmt.Stringer.
func (g Generator) String() string {
	switch g {
	case GeneratorMersenne:
		return "mersenne"
	case GeneratorLibrary:
		return "library"
	default:
		return fmt.Sprintf("Generator(%d)", int(g))
	}
}

// ParseGenerator resolves "mersenne" or "library".
func ParseGenerator(name string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mersenne", "mt19937":
		return GeneratorMersenne, nil
	case "library", "lib", "stdlib":
		return GeneratorLibrary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// Distribution selects the sample distribution of the initial field.
type Distribution int

const (
	// Uniform samples lie in [-1, 1).
	Uniform Distribution = iota
	// Gaussian samples have mean 0 and standard deviation 1.
	Gaussian
	// Perlin is smooth gradient noise over the field coordinates, roughly
	// in [-1, 1]. It needs the field extents, see [Source.FillField].
	Perlin
)

// String implements fmt.Stringer.
func (d Distribution) String() string {
	switch d {
	case Uniform:
		return "uniform"
	case Gaussian:
		return "gaussian"
	case Perlin:
		return "perlin"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// ParseDistribution resolves "uniform", "gaussian" or "perlin".
func ParseDistribution(name string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform", "u":
		return Uniform, nil
	case "gaussian", "normal", "g":
		return Gaussian, nil
	case "perlin":
		return Perlin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
	}
}

// Source is a seeded random sample generator. Two sources built with the
// same seed and generator produce the same sequence.
type Source struct {
	seed        int64
	generator   Generator
	perlinScale float64

	mt  *prng.MT19937
	lib *rand.Rand
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) SourceOption {
	return func(s *Source) {
		s.seed = seed
	}
}

// WithGenerator selects the pseudo-random engine.
func WithGenerator(g Generator) SourceOption {
	return func(s *Source) {
		s.generator = g
	}
}

// WithPerlinScale sets how many samples span one Perlin lattice cell.
// Values <= 0 keep the default.
func WithPerlinScale(samples float64) SourceOption {
	return func(s *Source) {
		if samples > 0 {
			s.perlinScale = samples
		}
	}
}

// NewSource creates a seeded source.
func NewSource(opts ...SourceOption) *Source {
	s := &Source{seed: DefaultSeed, generator: GeneratorMersenne, perlinScale: DefaultPerlinScale}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.Reset()
	return s
}

// Seed returns the configured seed.
func (s *Source) Seed() int64 { return s.seed }

// Generator returns the configured generator.
func (s *Source) Generator() Generator { return s.generator }

// Reset restarts the sequence from the configured seed.
func (s *Source) Reset() {
	switch s.generator {
	case GeneratorLibrary:
		s.lib = rand.New(rand.NewSource(s.seed))
		s.mt = nil
	default:
		s.mt = prng.NewMT19937()
		s.mt.Seed(uint64(s.seed))
		s.lib = nil
	}
}

// Uniform fills dst with samples from [lower, upper).
func (s *Source) Uniform(dst []float64, lower, upper float64) error {
	if !(upper > lower) {
		return fmt.Errorf("%w: uniform bounds [%g, %g)", ErrInvalidRange, lower, upper)
	}
	if s.lib != nil {
		scale := upper - lower
		for i := range dst {
			dst[i] = lower + scale*s.lib.Float64()
		}
		return nil
	}
	dist := distuv.Uniform{Min: lower, Max: upper, Src: s.mt}
	for i := range dst {
		dst[i] = dist.Rand()
	}
	return nil
}

// Gaussian fills dst with normally distributed samples.
func (s *Source) Gaussian(dst []float64, mean, stddev float64) error {
	if stddev < 0 {
		return fmt.Errorf("%w: negative standard deviation %g", ErrInvalidRange, stddev)
	}
	if s.lib != nil {
		for i := range dst {
			dst[i] = mean + stddev*s.lib.NormFloat64()
		}
		return nil
	}
	dist := distuv.Normal{Mu: mean, Sigma: stddev, Src: s.mt}
	for i := range dst {
		dst[i] = dist.Rand()
	}
	return nil
}

// Fill draws white noise with the given distribution: uniform in [-1, 1)
// or Gaussian with mean 0 and standard deviation 1. Perlin needs extents
// and is rejected here.
func (s *Source) Fill(dst []float64, d Distribution) error {
	switch d {
	case Uniform:
		return s.Uniform(dst, -1, 1)
	case Gaussian:
		return s.Gaussian(dst, 0, 1)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownDistribution, d)
	}
}

// FillField is Fill for a field with known extents. It also accepts
// Perlin, seeded from the source seed.
func (s *Source) FillField(dst []float64, ext core.Extents, d Distribution) error {
	if d != Perlin {
		return s.Fill(dst, d)
	}
	return PerlinField(dst, ext, s.perlinScale, s.seed)
}
