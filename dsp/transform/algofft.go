package transform

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// AlgoFFT is an [Engine] backed by algo-fft complex plans.
//
// algo-fft normalizes its inverse transform by 1/n; AlgoFFT rescales every
// inverse pass by n so results follow the unnormalized engine contract.
type AlgoFFT struct {
	mu    sync.Mutex
	plans map[int]*algofft.Plan[complex128]

	row  []complex128
	work []complex128
}

// NewAlgoFFT creates an engine with an empty plan cache.
func NewAlgoFFT() *AlgoFFT {
	return &AlgoFFT{plans: make(map[int]*algofft.Plan[complex128])}
}

// Name implements [Engine].
func (e *AlgoFFT) Name() string { return NameAlgoFFT }

func (e *AlgoFFT) plan(n int) (*algofft.Plan[complex128], error) {
	if p, ok := e.plans[n]; ok {
		return p, nil
	}
	p, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: length %d: %w", ErrPlan, n, err)
	}
	e.plans[n] = p
	return p, nil
}

func (e *AlgoFFT) forward(lane []complex128) error {
	p, err := e.plan(len(lane))
	if err != nil {
		return err
	}
	if err := p.Forward(lane, lane); err != nil {
		return fmt.Errorf("transform: forward FFT failed: %w", err)
	}
	return nil
}

func (e *AlgoFFT) inverse(lane []complex128) error {
	p, err := e.plan(len(lane))
	if err != nil {
		return err
	}
	if err := p.Inverse(lane, lane); err != nil {
		return fmt.Errorf("transform: inverse FFT failed: %w", err)
	}
	core.ScaleComplex(lane, float64(len(lane)))
	return nil
}

// ForwardRealToComplex implements [Engine].
func (e *AlgoFFT) ForwardRealToComplex(dst []complex128, src []float64, ext core.Extents) error {
	if err := checkLengths(ext, len(src), len(dst)); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	n := ext.Last()
	half := n/2 + 1
	rows := len(src) / n
	e.row = core.EnsureLen(e.row, n)

	for r := 0; r < rows; r++ {
		for i, v := range src[r*n : (r+1)*n] {
			e.row[i] = complex(v, 0)
		}
		if err := e.forward(e.row); err != nil {
			return err
		}
		copy(dst[r*half:(r+1)*half], e.row[:half])
	}

	return complexAxes(dst, ext.SpectrumExtents(), e.forward)
}

// InverseComplexToReal implements [Engine]. src is left untouched.
func (e *AlgoFFT) InverseComplexToReal(dst []float64, src []complex128, ext core.Extents) error {
	if err := checkLengths(ext, len(dst), len(src)); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.work = core.EnsureLen(e.work, len(src))
	copy(e.work, src)
	if err := complexAxes(e.work, ext.SpectrumExtents(), e.inverse); err != nil {
		return err
	}

	n := ext.Last()
	half := n/2 + 1
	rows := len(dst) / n
	e.row = core.EnsureLen(e.row, n)

	for r := 0; r < rows; r++ {
		hermitianFill(e.row, e.work[r*half:(r+1)*half])
		if err := e.inverse(e.row); err != nil {
			return err
		}
		out := dst[r*n : (r+1)*n]
		for i := range out {
			out[i] = real(e.row[i])
		}
	}
	return nil
}

// ForwardComplex implements [Engine].
func (e *AlgoFFT) ForwardComplex(data []complex128) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty input", ErrLength)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.forward(data)
}

// InverseComplex implements [Engine].
func (e *AlgoFFT) InverseComplex(data []complex128) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty input", ErrLength)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inverse(data)
}
