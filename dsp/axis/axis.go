package axis

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-numrs/dsp/core"
)

const outOfRange = "index out of range."

// Spec is an optional signed dimension index. The zero value is [Last].
type Spec struct {
	index int
	set   bool
}

// Last selects the last dimension.
var Last = Spec{}

// At selects dimension i, counted from the end when negative.
func At(i int) Spec {
	return Spec{index: i, set: true}
}

// Value returns the raw index and whether one was given.
func (s Spec) Value() (int, bool) {
	return s.index, s.set
}

func (s Spec) String() string {
	if !s.set {
		return "last"
	}
	return strconv.Itoa(s.index)
}

// Normalize maps spec onto [0, rank). It reports false when the index is out
// of range for rank, including every spec when rank <= 0.
func Normalize(spec Spec, rank int) (int, bool) {
	if rank <= 0 {
		return 0, false
	}

	i := -1
	if spec.set {
		i = spec.index
	}

	switch {
	case i >= 0:
		if i >= rank {
			return 0, false
		}
		return i, true
	case i == minInt || -i > rank:
		return 0, false
	default:
		return rank + i, true
	}
}

// Resolve maps spec onto [0, rank), returning an InvalidArg error for the
// "axis" argument when it is out of range.
func Resolve(spec Spec, rank int) (int, error) {
	if rank < 0 {
		return 0, core.InvalidArgf("rank", "negative rank %d", rank)
	}

	idx, ok := Normalize(spec, rank)
	if !ok {
		return 0, core.InvalidArg("axis", outOfRange)
	}
	if idx < 0 || idx >= rank {
		return 0, core.InvalidArgf("axis", "normalized index %d outside rank %d", idx, rank)
	}
	return idx, nil
}

// MustResolve is like Resolve but panics on error. It is intended for
// constant ranks known to be valid.
func MustResolve(spec Spec, rank int) int {
	idx, err := Resolve(spec, rank)
	if err != nil {
		panic(fmt.Sprintf("axis: resolve %s for rank %d: %v", spec, rank, err))
	}
	return idx
}

// ResolveShape resolves spec against an array with the given shape.
func ResolveShape(spec Spec, shape []int) (int, error) {
	return Resolve(spec, len(shape))
}

// Dim returns the length of the dimension spec selects in shape.
func Dim(spec Spec, shape []int) (int, error) {
	idx, err := ResolveShape(spec, shape)
	if err != nil {
		return 0, err
	}
	return shape[idx], nil
}

const minInt = -1 << (strconv.IntSize - 1)
