// Package noise shapes white noise into colored noise fields of one, two or
// three dimensions.
//
// The pipeline runs in the frequency domain:
//
//	spec, err := noise.Decompose(engine, field, ext)  // real -> packed spectrum
//	dc, err := noise.Shift(spec, params)              // power law + band-pass
//	err = noise.Accentuate(spec, planes)              // optional, 2D/3D
//	err = spec.Reproject(field)                       // spectrum -> real, / N
//
// A [Spectrum] owns its bins from [Decompose] until exactly one call to
// [Spectrum.Reproject] or [Spectrum.Release]; afterwards every method
// reports [ErrSpectrumReleased].
//
// One-dimensional signals can instead be shaped in place with
// [ShiftSpectrum1D], which uses the linear exponent convention and reflects
// odd samples about the DC level after the inverse transform.
//
// Noise colors map to power-law exponents: white 0, pink -1, red/brown -2,
// blue +1, violet +2. In two and three dimensions the exponent applies to
// the squared radial index, so the amplitude scales by d^(exponent/2).
package noise
