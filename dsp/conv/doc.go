// Package conv provides numpy-compatible one-dimensional convolution and
// correlation.
//
// Two backends compute the same result:
//
//   - Direct: multiply-accumulate over the zero-padded inputs, for any numeric
//     element type. float64 kernels of 4 or more taps use algo-vecmath block
//     kernels (AVX2/NEON where available).
//   - FFT: transform-domain multiplication for float64, using a caller-owned
//     [FFTProcessor] that caches plans and scratch buffers across calls.
//
// # Modes
//
// Every entry point takes an explicit [Mode]; there is no default.
//
//	ModeFull   len(a)+len(v)-1 samples, every point of overlap
//	ModeSame   len(a) samples, centered on the full result
//	ModeValid  len(a)-len(v)+1 samples, complete overlap only
//
// The kernel v must not be longer than the signal a. Violations, empty inputs
// and unknown modes are reported as core.ErrInvalidArg errors; FFT backend
// failures as core.ErrConv.
//
// # Usage
//
//	out, err := conv.Convolve([]float64{1, 2, 3}, []float64{0, 1, 0.5}, conv.ModeSame)
//	// out == [1 2.5 4]
//
// For repeated float64 convolutions, create one processor and reuse it:
//
//	proc := conv.NewFFTProcessor()
//	for _, frame := range frames {
//		out, err := conv.ConvolveFFT(frame, kernel, conv.ModeValid, proc)
//		...
//	}
//
// A processor must not be shared between goroutines. [Convolve] and
// [Correlate] keep no state and may be called concurrently.
//
// # Algorithm Selection
//
// ConvolveFFT uses a single transform of the next power of two above
// len(a)+len(v)-1. When the signal is at least 8 times longer than the kernel
// and the result exceeds 4096 samples it switches to overlap-add over blocks
// of max(256, nextPow2(len(v))) samples, reusing one plan for every block.
package conv
