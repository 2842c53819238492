package transform

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Gonum is an [Engine] backed by gonum's FFTPACK port. Its transforms are
// already unnormalized and accept any positive length.
type Gonum struct {
	mu      sync.Mutex
	real    map[int]*fourier.FFT
	complex map[int]*fourier.CmplxFFT

	out  []complex128
	work []complex128
}

// NewGonum creates an engine with empty plan caches.
func NewGonum() *Gonum {
	return &Gonum{
		real:    make(map[int]*fourier.FFT),
		complex: make(map[int]*fourier.CmplxFFT),
	}
}

// Name implements [Engine].
func (e *Gonum) Name() string { return NameGonum }

func (e *Gonum) realPlan(n int) *fourier.FFT {
	p, ok := e.real[n]
	if !ok {
		p = fourier.NewFFT(n)
		e.real[n] = p
	}
	return p
}

func (e *Gonum) complexPlan(n int) *fourier.CmplxFFT {
	p, ok := e.complex[n]
	if !ok {
		p = fourier.NewCmplxFFT(n)
		e.complex[n] = p
	}
	return p
}

func (e *Gonum) forward(lane []complex128) error {
	e.work = core.EnsureLen(e.work, len(lane))
	copy(e.work, lane)
	e.complexPlan(len(lane)).Coefficients(lane, e.work)
	return nil
}

func (e *Gonum) inverse(lane []complex128) error {
	e.work = core.EnsureLen(e.work, len(lane))
	copy(e.work, lane)
	e.complexPlan(len(lane)).Sequence(lane, e.work)
	return nil
}

// ForwardRealToComplex implements [Engine].
func (e *Gonum) ForwardRealToComplex(dst []complex128, src []float64, ext core.Extents) error {
	if err := checkLengths(ext, len(src), len(dst)); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	n := ext.Last()
	half := n/2 + 1
	rows := len(src) / n
	p := e.realPlan(n)

	for r := 0; r < rows; r++ {
		p.Coefficients(dst[r*half:(r+1)*half], src[r*n:(r+1)*n])
	}
	return complexAxes(dst, ext.SpectrumExtents(), e.forward)
}

// InverseComplexToReal implements [Engine]. src is left untouched.
func (e *Gonum) InverseComplexToReal(dst []float64, src []complex128, ext core.Extents) error {
	if err := checkLengths(ext, len(dst), len(src)); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.out = core.EnsureLen(e.out, len(src))
	copy(e.out, src)
	if err := complexAxes(e.out, ext.SpectrumExtents(), e.inverse); err != nil {
		return err
	}

	n := ext.Last()
	half := n/2 + 1
	rows := len(dst) / n
	p := e.realPlan(n)
	for r := 0; r < rows; r++ {
		p.Sequence(dst[r*n:(r+1)*n], e.out[r*half:(r+1)*half])
	}
	return nil
}

// ForwardComplex implements [Engine].
func (e *Gonum) ForwardComplex(data []complex128) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty input", ErrLength)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.forward(data)
}

// InverseComplex implements [Engine].
func (e *Gonum) InverseComplex(data []complex128) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty input", ErrLength)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inverse(data)
}
