package conv

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-numrs/dsp/core"
)

// Mode specifies the output mode for convolution and correlation.
// The zero value is not a valid mode; callers always choose one.
type Mode int

const (
	// ModeFull returns the convolution at every point of overlap,
	// with length len(a)+len(v)-1.
	ModeFull Mode = iota + 1

	// ModeSame returns max(len(a), len(v)) samples centered on the full result.
	ModeSame

	// ModeValid returns only the samples where the inputs overlap completely,
	// with length max(len(a), len(v)) - min(len(a), len(v)) + 1.
	ModeValid
)

// ParseMode parses "full", "same" or "valid" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return ModeFull, nil
	case "same":
		return ModeSame, nil
	case "valid":
		return ModeValid, nil
	default:
		return 0, core.InvalidArgf("mode", "unknown mode %q, expected full, same or valid", s)
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeFull && m <= ModeValid
}

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// OutputLen returns the number of samples produced for inputs of length
// aLen and vLen under mode. Both lengths must be positive.
func OutputLen(mode Mode, aLen, vLen int) (int, error) {
	if !mode.Valid() {
		return 0, invalidMode(mode)
	}
	if aLen <= 0 || vLen <= 0 {
		return 0, core.InvalidArgf("len", "lengths must be positive, got %d and %d", aLen, vLen)
	}

	start, end := mode.window(aLen, vLen)
	return end - start, nil
}

// window returns the half-open range [start, end) of the full convolution
// that mode keeps.
func (m Mode) window(aLen, vLen int) (start, end int) {
	fullLen := aLen + vLen - 1
	short, long := min(aLen, vLen), max(aLen, vLen)

	switch m {
	case ModeSame:
		start = (short - 1) / 2
		return start, start + long
	case ModeValid:
		return short - 1, long
	default:
		return 0, fullLen
	}
}

func invalidMode(m Mode) error {
	return core.InvalidArgf("mode", "unsupported mode %s", m)
}
