// Package axis resolves user-supplied dimension indices against an array rank.
//
// An index may be absent (meaning the last dimension), non-negative (counted
// from the first dimension) or negative (counted from the last, so -1 is the
// last dimension). Resolution yields a canonical index in [0, rank).
//
//	idx, err := axis.Resolve(axis.At(-2), 3) // idx == 1
//	idx, err := axis.Resolve(axis.Last, 3)   // idx == 2
//
// Callers that know the rank statically pass it as a constant; there is no
// separate fixed-rank code path.
package axis
