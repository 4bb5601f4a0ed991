package core

import "math"

// Integer is any signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Real is any integer or floating-point type.
type Real interface {
	Integer | Float
}

// Number is any type that supports +, * and += with value semantics,
// complex types included.
type Number interface {
	Real | ~complex64 | ~complex128
}

// IsClose reports whether a and b are equal within the numpy.isclose
// tolerance |a-b| <= atol + rtol*|b|. NaNs are never close.
func IsClose(a, b, rtol, atol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// NextPowerOf2 returns the smallest power of two >= n, or 1 for n <= 1.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
