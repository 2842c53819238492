// Package transform adapts FFT backends to the multidimensional real/complex
// transform contract used by the noise pipeline.
//
// An [Engine] computes unnormalized transforms in the FFTW convention: a
// forward transform followed by an inverse transform scales the data by the
// sample count, and callers divide by it themselves. Real-to-complex results
// are Hermitian-packed: only n/2+1 bins are stored along the last axis.
//
// Two engines are available:
//
//   - "algofft" (default) applies github.com/MeKo-Christian/algo-fft complex
//     plans row by row and column by column.
//   - "gonum" uses gonum.org/v1/gonum/dsp/fourier, which accepts any length.
package transform
