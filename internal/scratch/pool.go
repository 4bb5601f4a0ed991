// Package scratch pools temporary slices for kernels that must stay safe for
// concurrent use but should not allocate on every call.
package scratch

import "sync"

// Pool hands out slices of T backed by a sync.Pool.
type Pool[T any] struct {
	pool sync.Pool
}

// Get returns a slice of length n. Its contents are unspecified.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(n int) *[]T {
	if v, ok := p.pool.Get().(*[]T); ok {
		if cap(*v) >= n {
			*v = (*v)[:n]
			return v
		}
	}
	s := make([]T, n)
	return &s
}

// Put returns a slice obtained from Get to the pool.
// The caller must not use the slice after calling Put.
func (p *Pool[T]) Put(s *[]T) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
