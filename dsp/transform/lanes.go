package transform

import "github.com/cwbudde/algo-noise/dsp/core"

// forEachLane calls fn with the offset and stride of every 1D lane running
// along axis in a row-major array with the given extents.
func forEachLane(ext core.Extents, axis int, fn func(offset, stride int) error) error {
	stride := 1
	for a := axis + 1; a < len(ext); a++ {
		stride *= ext[a]
	}
	outer := 1
	for a := 0; a < axis; a++ {
		outer *= ext[a]
	}
	block := stride * ext[axis]
	for o := 0; o < outer; o++ {
		for in := 0; in < stride; in++ {
			if err := fn(o*block+in, stride); err != nil {
				return err
			}
		}
	}
	return nil
}

// complexAxes runs a 1D complex transform along every axis but the last of
// a packed spectrum. lane is reused scratch sized per axis.
func complexAxes(
	bins []complex128,
	packed core.Extents,
	transform func(lane []complex128) error,
) error {
	var lane []complex128
	for axis := 0; axis < len(packed)-1; axis++ {
		lane = core.EnsureLen(lane, packed[axis])
		err := forEachLane(packed, axis, func(offset, stride int) error {
			core.Gather(lane, bins, offset, stride)
			if err := transform(lane); err != nil {
				return err
			}
			core.Scatter(bins, lane, offset, stride)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// hermitianFill expands a packed row of n/2+1 bins into all n bins using
// X[n-k] = conj(X[k]).
func hermitianFill(full, packed []complex128) {
	n := len(full)
	copy(full, packed)
	for k := 1; k < n-len(packed)+1; k++ {
		c := packed[k]
		full[n-k] = complex(real(c), -imag(c))
	}
}
