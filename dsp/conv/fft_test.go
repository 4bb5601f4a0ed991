package conv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-numrs/dsp/core"
	"github.com/cwbudde/algo-numrs/internal/testutil"
)

func TestConvolveFFTModes(t *testing.T) {
	a := []float64{1, 2, 3}
	v := []float64{0, 1, 0.5}
	proc := NewFFTProcessor()

	tests := []struct {
		mode Mode
		want []float64
	}{
		{ModeFull, []float64{0, 1, 2.5, 4, 1.5}},
		{ModeSame, []float64{1, 2.5, 4}},
		{ModeValid, []float64{2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got, err := ConvolveFFT(a, v, tt.mode, proc)
			require.NoError(t, err)
			testutil.RequireAllClose(t, got, tt.want, testutil.RelTol, testutil.AbsTol)
		})
	}
}

func TestConvolveFFTMatchesDirect(t *testing.T) {
	sizes := []struct{ a, v int }{
		{1, 1}, {2, 1}, {5, 5}, {16, 3}, {17, 16}, {100, 7}, {257, 64}, {1000, 999},
	}

	proc := NewFFTProcessor()
	for _, size := range sizes {
		a := testutil.DeterministicNoise(int64(size.a), 1, size.a)
		v := testutil.DeterministicNoise(int64(size.v+1000), 1, size.v)

		for _, mode := range []Mode{ModeFull, ModeSame, ModeValid} {
			t.Run(fmt.Sprintf("%s_a=%d_v=%d", mode, size.a, size.v), func(t *testing.T) {
				want, err := Convolve(a, v, mode)
				require.NoError(t, err)

				got, err := ConvolveFFT(a, v, mode, proc)
				require.NoError(t, err)
				testutil.RequireAllClose(t, got, want, testutil.RelTol, 1e-9)
			})
		}
	}
}

func TestConvolveFFTIntegerValuedExact(t *testing.T) {
	a := []float64{3, -1, 4, 1, -5, 9, 2, -6}
	v := []float64{2, 7, -1}

	want, err := Convolve(a, v, ModeFull)
	require.NoError(t, err)

	got, err := ConvolveFFT(a, v, ModeFull, NewFFTProcessor())
	require.NoError(t, err)
	testutil.RequireAllClose(t, got, want, testutil.RelTol, testutil.AbsTol)
}

func TestConvolveFFTBlocked(t *testing.T) {
	a := testutil.DeterministicNoise(21, 1, 10000)
	v := testutil.DeterministicNoise(22, 1, 50)
	require.True(t, useBlocked(len(a), len(v)))

	proc := NewFFTProcessor()
	for _, mode := range []Mode{ModeFull, ModeSame, ModeValid} {
		t.Run(mode.String(), func(t *testing.T) {
			want, err := Convolve(a, v, mode)
			require.NoError(t, err)

			got, err := ConvolveFFT(a, v, mode, proc)
			require.NoError(t, err)
			testutil.RequireAllClose(t, got, want, testutil.RelTol, 1e-9)
		})
	}
}

func TestFFTProcessorReuse(t *testing.T) {
	proc := NewFFTProcessor()
	a := testutil.DeterministicNoise(1, 1, 100)
	v := testutil.DeterministicNoise(2, 1, 10)

	first, err := ConvolveFFT(a, v, ModeSame, proc)
	require.NoError(t, err)
	assert.Equal(t, 1, proc.PlanCount())

	// A different size adds a plan; the earlier one is kept.
	_, err = ConvolveFFT(testutil.DeterministicNoise(3, 1, 1000), v, ModeFull, proc)
	require.NoError(t, err)
	assert.Equal(t, 2, proc.PlanCount())

	// Scratch state from the previous call must not leak into this one.
	again, err := ConvolveFFT(a, v, ModeSame, proc)
	require.NoError(t, err)
	assert.Equal(t, 2, proc.PlanCount())
	testutil.RequireAllClose(t, again, first, 0, 0)

	proc.Reset()
	assert.Zero(t, proc.PlanCount())

	after, err := ConvolveFFT(a, v, ModeSame, proc)
	require.NoError(t, err)
	testutil.RequireAllClose(t, after, first, testutil.RelTol, testutil.AbsTol)
}

func TestFFTProcessorZeroValue(t *testing.T) {
	var proc FFTProcessor

	got, err := ConvolveFFT([]float64{1, 2, 3}, []float64{1}, ModeFull, &proc)
	require.NoError(t, err)
	testutil.RequireAllClose(t, got, []float64{1, 2, 3}, testutil.RelTol, testutil.AbsTol)
}

func TestConvolveFFTErrors(t *testing.T) {
	proc := NewFFTProcessor()

	_, err := ConvolveFFT([]float64{1}, []float64{1, 2}, ModeFull, proc)
	assert.ErrorIs(t, err, core.ErrInvalidArg)

	_, err = ConvolveFFT(nil, []float64{1}, ModeFull, proc)
	assert.ErrorIs(t, err, core.ErrInvalidArg)

	_, err = ConvolveFFT([]float64{1, 2}, []float64{1}, Mode(0), proc)
	assert.ErrorIs(t, err, core.ErrInvalidArg)

	got, err := ConvolveFFT([]float64{1, 2}, []float64{1}, ModeFull, nil)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, core.ErrInvalidArg)

	assert.Zero(t, proc.PlanCount(), "validation failures must not touch the processor")
}
