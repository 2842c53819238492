package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Errors returned by transform engines.
var (
	ErrPlan          = errors.New("transform: failed to create plan")
	ErrLength        = errors.New("transform: buffer length mismatch")
	ErrUnknownEngine = errors.New("transform: unknown engine")
)

// Engine performs forward and inverse FFTs over dense row-major fields.
type Engine interface {
	// Name identifies the backend.
	Name() string

	// ForwardRealToComplex transforms src (ext.Total() samples) into dst
	// (ext.SpectrumLen() Hermitian-packed bins).
	ForwardRealToComplex(dst []complex128, src []float64, ext core.Extents) error

	// InverseComplexToReal transforms the packed spectrum src back into dst.
	// The result is scaled by ext.Total().
	InverseComplexToReal(dst []float64, src []complex128, ext core.Extents) error

	// ForwardComplex computes the 1D forward DFT of data in place.
	ForwardComplex(data []complex128) error

	// InverseComplex computes the unnormalized 1D inverse DFT of data in place.
	InverseComplex(data []complex128) error
}

// Engine names accepted by [New].
const (
	NameAlgoFFT = "algofft"
	NameGonum   = "gonum"
)

// Names lists the available engines, default first.
func Names() []string {
	return []string{NameAlgoFFT, NameGonum}
}

// New returns the engine registered under name. An empty name selects the
// default engine.
func New(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameAlgoFFT:
		return NewAlgoFFT(), nil
	case NameGonum:
		return NewGonum(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

func checkLengths(ext core.Extents, realLen, binLen int) error {
	if err := ext.Validate(); err != nil {
		return err
	}
	if realLen != ext.Total() {
		return fmt.Errorf("%w: real buffer has %d samples, extents %v need %d",
			ErrLength, realLen, ext, ext.Total())
	}
	if binLen != ext.SpectrumLen() {
		return fmt.Errorf("%w: spectrum has %d bins, extents %v need %d",
			ErrLength, binLen, ext, ext.SpectrumLen())
	}
	return nil
}
