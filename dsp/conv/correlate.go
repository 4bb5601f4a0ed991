package conv

import "github.com/cwbudde/algo-numrs/dsp/core"

// Correlate computes the cross-correlation of a and v, trimmed according to
// mode, matching numpy.correlate for real inputs:
//
//	c[k] = sum_n a[n+k] * v[n]
//
// Cross-correlation is convolution with the time-reversed kernel, so the
// validation rules and output lengths are those of Convolve.
func Correlate[T core.Real](a, v []T, mode Mode) ([]T, error) {
	if err := checkInputs(len(a), len(v), mode); err != nil {
		return nil, err
	}
	return Convolve(a, core.Reversed(v), mode)
}

// CorrelateFFT is Correlate for float64 inputs using the FFT backend.
func CorrelateFFT(a, v []float64, mode Mode, proc *FFTProcessor) ([]float64, error) {
	if err := checkInputs(len(a), len(v), mode); err != nil {
		return nil, err
	}
	return ConvolveFFT(a, core.Reversed(v), mode, proc)
}

// FindPeak returns the index and value of the maximum of a correlation
// result, or (-1, 0) for an empty slice.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index, value = 0, corr[0]
	for i, x := range corr {
		if x > value {
			index, value = i, x
		}
	}
	return index, value
}

// LagFromIndex converts an index into a ModeFull correlation result to the
// lag of a relative to v.
func LagFromIndex(index, vLen int) int {
	return index - (vLen - 1)
}
