package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-numrs/dsp/core"
)

// Inputs at least this much longer than the kernel, with a full result above
// blockedMinLen samples, are convolved block-wise by overlap-add.
const (
	blockedRatio  = 8
	blockedMinLen = 4096
)

// FFTProcessor holds the FFT plans and scratch buffers used by ConvolveFFT.
//
// A processor is created once with NewFFTProcessor and passed to any number of
// ConvolveFFT calls; plans are cached per transform size and buffers are grown
// on demand, so repeated convolutions of compatible size do not allocate
// scratch space. A processor must not be used by more than one goroutine at a
// time.
type FFTProcessor struct {
	plans map[int]*algofft.Plan[complex128]

	// Scratch buffers, reused across calls.
	signal []complex128
	kernel []complex128
}

// NewFFTProcessor returns an empty processor.
func NewFFTProcessor() *FFTProcessor {
	return &FFTProcessor{plans: make(map[int]*algofft.Plan[complex128])}
}

// PlanCount returns the number of cached FFT plans.
func (p *FFTProcessor) PlanCount() int {
	return len(p.plans)
}

// Reset releases all cached plans and scratch buffers.
func (p *FFTProcessor) Reset() {
	clear(p.plans)
	p.signal = nil
	p.kernel = nil
}

// ConvolveFFT computes the same result as Convolve for float64 inputs using
// FFT-based convolution. proc supplies the plans and scratch space and is
// modified by the call.
//
// Backend failures are reported as core.ErrConv errors; no partial result is
// returned.
func ConvolveFFT(a, v []float64, mode Mode, proc *FFTProcessor) ([]float64, error) {
	if err := checkInputs(len(a), len(v), mode); err != nil {
		return nil, err
	}
	if proc == nil {
		return nil, core.InvalidArg("proc", "nil FFT processor")
	}

	start, end := mode.window(len(a), len(v))
	dst := make([]float64, end-start)

	var err error
	if useBlocked(len(a), len(v)) {
		err = proc.overlapAdd(dst, a, v, start)
	} else {
		err = proc.single(dst, a, v, start)
	}
	if err != nil {
		return nil, core.WrapConv(err)
	}
	return dst, nil
}

func useBlocked(aLen, vLen int) bool {
	return aLen >= blockedRatio*vLen && aLen+vLen-1 > blockedMinLen
}

// plan returns the cached plan for size, creating it on first use.
func (p *FFTProcessor) plan(size int) (*algofft.Plan[complex128], error) {
	if p.plans == nil {
		p.plans = make(map[int]*algofft.Plan[complex128])
	}
	if plan, ok := p.plans[size]; ok {
		return plan, nil
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("create FFT plan of size %d: %w", size, err)
	}
	p.plans[size] = plan
	return plan, nil
}

// single convolves a and v with one transform covering the whole result.
func (p *FFTProcessor) single(dst, a, v []float64, start int) error {
	size := core.NextPowerOf2(len(a) + len(v) - 1)

	plan, err := p.plan(size)
	if err != nil {
		return err
	}

	p.signal = loadPadded(p.signal, a, size)
	p.kernel = loadPadded(p.kernel, v, size)

	if err := plan.Forward(p.signal, p.signal); err != nil {
		return fmt.Errorf("forward FFT of signal: %w", err)
	}
	if err := plan.Forward(p.kernel, p.kernel); err != nil {
		return fmt.Errorf("forward FFT of kernel: %w", err)
	}

	for i := range p.signal {
		p.signal[i] *= p.kernel[i]
	}

	if err := plan.Inverse(p.signal, p.signal); err != nil {
		return fmt.Errorf("inverse FFT: %w", err)
	}

	for i := range dst {
		dst[i] = real(p.signal[start+i])
	}
	return nil
}

// loadPadded copies src into buf as complex values and zero pads to size.
func loadPadded(buf []complex128, src []float64, size int) []complex128 {
	buf = core.EnsureLen(buf, size)
	for i, x := range src {
		buf[i] = complex(x, 0)
	}
	core.Zero(buf[len(src):])
	return buf
}
