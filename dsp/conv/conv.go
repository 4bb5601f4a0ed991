package conv

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-numrs/dsp/core"
	"github.com/cwbudde/algo-numrs/internal/scratch"
)

// simdThreshold is the kernel length from which the float64 path uses the
// vecmath block kernels instead of the scalar loop.
const simdThreshold = 4

var tempPool scratch.Pool[float64]

// Convolve returns the discrete linear convolution of signal a with kernel v,
// trimmed according to mode, matching numpy.convolve.
//
// Both inputs are zero padded; v must not be longer than a. The result is a
// newly allocated slice of length OutputLen(mode, len(a), len(v)).
//
// Convolve is safe for concurrent use.
func Convolve[T core.Number](a, v []T, mode Mode) ([]T, error) {
	if err := checkInputs(len(a), len(v), mode); err != nil {
		return nil, err
	}

	start, end := mode.window(len(a), len(v))
	dst := make([]T, end-start)
	direct(dst, a, v, start)
	return dst, nil
}

// ConvolveTo is like Convolve but writes into dst, which must have length
// OutputLen(mode, len(a), len(v)).
func ConvolveTo[T core.Number](dst, a, v []T, mode Mode) error {
	if err := checkInputs(len(a), len(v), mode); err != nil {
		return err
	}

	start, end := mode.window(len(a), len(v))
	if len(dst) != end-start {
		return core.InvalidArgf("dst", "length %d, want %d", len(dst), end-start)
	}

	direct(dst, a, v, start)
	return nil
}

// DirectKernel names the block kernel the float64 direct path dispatches to
// on this machine, for example "amd64/avx2" or "arm64/neon".
func DirectKernel() string {
	f := cpu.DetectFeatures()

	kernel := "generic"
	switch {
	case f.ForceGeneric:
	case f.HasAVX2:
		kernel = "avx2"
	case f.HasNEON:
		kernel = "neon"
	case f.HasSSE2:
		kernel = "sse2"
	}
	return f.Architecture + "/" + kernel
}

// checkInputs validates the preconditions shared by every entry point.
func checkInputs(aLen, vLen int, mode Mode) error {
	switch {
	case aLen == 0:
		return core.InvalidArg("a", "empty signal")
	case vLen == 0:
		return core.InvalidArg("v", "empty kernel")
	case vLen > aLen:
		return core.InvalidArgf("v", "kernel length %d exceeds signal length %d", vLen, aLen)
	case !mode.Valid():
		return invalidMode(mode)
	}
	return nil
}

// direct writes full[start : start+len(dst)] of the linear convolution of a
// and v into dst.
func direct[T core.Number](dst, a, v []T, start int) {
	if af, ok := any(a).([]float64); ok && len(v) >= simdThreshold {
		directFloat64(any(dst).([]float64), af, any(v).([]float64), start)
		return
	}

	n, m := len(a), len(v)
	for i := range dst {
		k := start + i
		lo, hi := max(0, k-n+1), min(m-1, k)

		var sum T
		for j := lo; j <= hi; j++ {
			sum += a[k-j] * v[j]
		}
		dst[i] = sum
	}
}

// directFloat64 scatters a[i]*v into dst with vecmath block operations,
// clipping each scaled kernel copy to the output window.
func directFloat64(dst, a, v []float64, start int) {
	clear(dst)

	m := len(v)
	end := start + len(dst)
	buf := tempPool.Get(m)
	defer tempPool.Put(buf)
	temp := *buf

	for i, x := range a {
		lo, hi := max(0, start-i), min(m, end-i)
		if lo >= hi {
			continue
		}

		seg := temp[:hi-lo]
		vecmath.ScaleBlock(seg, v[lo:hi], x)

		off := i + lo - start
		vecmath.AddBlockInPlace(dst[off:off+len(seg)], seg)
	}
}
