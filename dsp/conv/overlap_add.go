package conv

import (
	"fmt"

	"github.com/cwbudde/algo-numrs/dsp/core"
)

// minBlockSize is the smallest input block used by overlapAdd.
const minBlockSize = 256

// overlapAdd convolves a long signal with a short kernel block by block:
//  1. Split a into non-overlapping blocks of blockSize samples
//  2. Zero-pad each block to the FFT size and multiply by the kernel spectrum
//  3. Add each block result into the output at the block offset
//
// Only full-result indices inside [start, start+len(dst)) are written.
func (p *FFTProcessor) overlapAdd(dst, a, v []float64, start int) error {
	m := len(v)
	blockSize := max(minBlockSize, core.NextPowerOf2(m))
	size := core.NextPowerOf2(blockSize + m - 1)

	plan, err := p.plan(size)
	if err != nil {
		return err
	}

	p.kernel = loadPadded(p.kernel, v, size)
	if err := plan.Forward(p.kernel, p.kernel); err != nil {
		return fmt.Errorf("forward FFT of kernel: %w", err)
	}

	clear(dst)

	for blockStart := 0; blockStart < len(a); blockStart += blockSize {
		block := a[blockStart:min(blockStart+blockSize, len(a))]

		// The block result covers full indices [blockStart, blockStart+len(block)+m-1).
		lo := max(0, start-blockStart)
		hi := min(len(block)+m-1, start+len(dst)-blockStart)
		if lo >= hi {
			continue
		}

		p.signal = loadPadded(p.signal, block, size)
		if err := plan.Forward(p.signal, p.signal); err != nil {
			return fmt.Errorf("forward FFT of block at %d: %w", blockStart, err)
		}

		for i := range p.signal {
			p.signal[i] *= p.kernel[i]
		}

		if err := plan.Inverse(p.signal, p.signal); err != nil {
			return fmt.Errorf("inverse FFT of block at %d: %w", blockStart, err)
		}

		off := blockStart - start
		for i := lo; i < hi; i++ {
			dst[off+i] += real(p.signal[i])
		}
	}
	return nil
}
