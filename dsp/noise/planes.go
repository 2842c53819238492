package noise

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidPlane is returned when a plane description cannot be parsed.
var ErrInvalidPlane = errors.New("noise: invalid plane")

// Plane is a directional preference: bins whose direction in frequency
// space lies within Width radians of the plane's projected normal are
// scaled by up to 1+Strength. Negative strengths suppress the direction.
type Plane struct {
	Normal   [3]float64
	Width    float64
	Strength float64
}

// NewPlane builds a plane. Only the magnitude of width is used.
func NewPlane(x, y, z, width, strength float64) Plane {
	return Plane{
		Normal:   [3]float64{x, y, z},
		Width:    math.Abs(width),
		Strength: strength,
	}
}

// ParsePlane parses "x,y,z,width,strength" (commas or whitespace).
func ParsePlane(s string) (Plane, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 5 {
		return Plane{}, fmt.Errorf("%w: %q needs x,y,z,width,strength", ErrInvalidPlane, s)
	}
	var v [5]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Plane{}, fmt.Errorf("%w: %q: %w", ErrInvalidPlane, s, err)
		}
		v[i] = x
	}
	return NewPlane(v[0], v[1], v[2], v[3], v[4]), nil
}

// String formats the plane in the form accepted by ParsePlane.
func (p Plane) String() string {
	return fmt.Sprintf("%g,%g,%g,%g,%g", p.Normal[0], p.Normal[1], p.Normal[2], p.Width, p.Strength)
}

// angle projects the normal onto the first two frequency axes, stretched by
// the aspect ratio n0/n1. The normal is not normalized and its third
// component is ignored. ok is false when the angle is undefined.
func (p Plane) angle(aspect float64) (float64, bool) {
	theta := math.Atan(aspect * p.Normal[0] / p.Normal[1])
	return theta, !math.IsNaN(theta)
}

// angularDistance is the separation of two directions modulo pi.
func angularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	d = math.Min(d, math.Abs(a-b+math.Pi))
	return math.Min(d, math.Abs(a-b-math.Pi))
}

// weight is the triangular falloff: strength at zero distance, zero at and
// beyond the half-width.
func weight(strength, width, distance float64) float64 {
	if width <= 0 {
		return 0
	}
	return strength * math.Max(0, 1-distance/width)
}

// binAngle is the direction of bin (i, j) where i indexes the first axis
// of extent n0. Indices past the midpoint n0/2 stand for negative
// frequencies; the Nyquist row of an even extent counts as negative.
func binAngle(i, j, n0 int) float64 {
	if 2*i < n0 {
		return math.Atan(-float64(i) / float64(j))
	}
	return math.Atan(float64(n0-i) / float64(j))
}

type projectedPlane struct {
	angle    float64
	width    float64
	strength float64
}

func projectPlanes(planes []Plane, aspect float64) []projectedPlane {
	out := make([]projectedPlane, 0, len(planes))
	for _, p := range planes {
		theta, ok := p.angle(aspect)
		if !ok || p.Width <= 0 || p.Strength == 0 {
			continue
		}
		out = append(out, projectedPlane{angle: theta, width: p.Width, strength: p.Strength})
	}
	return out
}

// accentFactor is 1 plus the summed contribution of every plane at theta.
func accentFactor(theta float64, planes []projectedPlane) float64 {
	f := 1.0
	for _, p := range planes {
		f += weight(p.strength, p.width, angularDistance(theta, p.angle))
	}
	return f
}

// Accentuate scales every bin that is off all axis planes by 1 plus the
// summed triangular weight of each plane. Contributions add, so
// overlapping planes layer linearly. Only the first two axes enter the
// angle; in 3D the last axis is ignored and the second axis index is used
// without wrapping. Defined for 2D and 3D spectra; zero planes is a no-op.
func Accentuate(s *Spectrum, planes []Plane) error {
	if s.Released() {
		return ErrSpectrumReleased
	}
	if d := s.ext.Dims(); d != 2 && d != 3 {
		return fmt.Errorf("%w: preference planes need 2 or 3 dimensions, got %d", ErrUnsupportedDims, d)
	}

	n0, n1 := s.ext[0], s.ext[1]
	projected := projectPlanes(planes, float64(n0)/float64(n1))
	if len(projected) == 0 {
		return nil
	}

	s.forEachBin(func(flat int, idx []int) {
		for _, k := range idx {
			if k == 0 {
				return
			}
		}
		theta := binAngle(idx[0], idx[1], n0)
		s.bins[flat] *= complex(accentFactor(theta, projected), 0)
	})
	return nil
}
