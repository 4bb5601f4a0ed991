package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// The contents of the returned slice are unspecified.
func EnsureLen[T any](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets all values in buf to the zero value.
func Zero[T any](buf []T) {
	clear(buf)
}

// Reversed returns a reversed copy of src.
func Reversed[T any](src []T) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[len(src)-1-i] = v
	}
	return out
}
