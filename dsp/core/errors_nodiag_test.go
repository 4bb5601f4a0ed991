//go:build nodiag

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWithoutDiagnostics(t *testing.T) {
	err := InvalidArg("axis", "index out of range.")
	assert.Empty(t, err.Arg)
	assert.Empty(t, err.Reason)
	assert.Equal(t, "There were invalid arguments. Reasons not shown without diagnostics.", err.Error())

	assert.Equal(t, "There were conflicting arguments. Reasons not shown without diagnostics.",
		ConflictArg("x").Error())
	assert.Equal(t, "An error occurred during the convolution. Reasons not shown without diagnostics.",
		Conv("x").Error())
}

func TestWrapConvWithoutDiagnostics(t *testing.T) {
	backend := errors.New("fft failed")
	err := WrapConv(backend)

	assert.ErrorIs(t, err, ErrConv)
	assert.ErrorIs(t, err, backend)
	assert.NotContains(t, err.Error(), "fft failed")
}
