package core

import (
	"errors"
	"fmt"
)

// MaxDims is the highest supported field dimensionality.
const MaxDims = 3

// MaxSamples bounds the total sample count of a field so that every flat
// index fits in a signed 32-bit integer.
const MaxSamples = 1<<31 - 1

// Errors returned by extent validation.
var (
	ErrInvalidExtents  = errors.New("core: extents must be positive")
	ErrUnsupportedDims = errors.New("core: unsupported number of dimensions")
	ErrTooManySamples  = errors.New("core: total sample count exceeds limit")
)

// Extents holds the per-axis sizes of a dense row-major field.
// The last axis varies fastest.
type Extents []int

// NewExtents returns validated extents.
func NewExtents(n ...int) (Extents, error) {
	e := Extents(append([]int(nil), n...))
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate rejects empty, oversized, non-positive and overflowing extents.
func (e Extents) Validate() error {
	if len(e) == 0 || len(e) > MaxDims {
		return fmt.Errorf("%w: %d", ErrUnsupportedDims, len(e))
	}
	total := 1
	for axis, n := range e {
		if n <= 0 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrInvalidExtents, axis, n)
		}
		if total > MaxSamples/n {
			return fmt.Errorf("%w: %v", ErrTooManySamples, []int(e))
		}
		total *= n
	}
	return nil
}

// Dims returns the number of axes.
func (e Extents) Dims() int { return len(e) }

// Total returns the number of real samples.
func (e Extents) Total() int {
	if len(e) == 0 {
		return 0
	}
	total := 1
	for _, n := range e {
		total *= n
	}
	return total
}

// Last returns the extent of the fastest-varying axis.
func (e Extents) Last() int { return e[len(e)-1] }

// SpectrumExtents returns the extents of the Hermitian-packed spectrum of a
// real field: the last axis holds n/2+1 bins, all others keep their size.
func (e Extents) SpectrumExtents() Extents {
	out := append(Extents(nil), e...)
	if len(out) > 0 {
		out[len(out)-1] = out[len(out)-1]/2 + 1
	}
	return out
}

// SpectrumLen returns the number of packed complex bins.
func (e Extents) SpectrumLen() int {
	return e.SpectrumExtents().Total()
}

// Strides returns row-major element strides for each axis.
func (e Extents) Strides() []int {
	strides := make([]int, len(e))
	s := 1
	for axis := len(e) - 1; axis >= 0; axis-- {
		strides[axis] = s
		s *= e[axis]
	}
	return strides
}

// Equal reports whether both extents describe the same shape.
func (e Extents) Equal(other Extents) bool {
	if len(e) != len(other) {
		return false
	}
	for i := range e {
		if e[i] != other[i] {
			return false
		}
	}
	return true
}

// String formats the extents as "n0xn1xn2".
func (e Extents) String() string {
	s := ""
	for i, n := range e {
		if i > 0 {
			s += "x"
		}
		s += fmt.Sprint(n)
	}
	return s
}

// WrapIndex maps index k on an axis of extent n to its signed-frequency
// magnitude, min(k, n-k).
func WrapIndex(k, n int) int {
	if k <= n-k {
		return k
	}
	return n - k
}
