package solo

import (
	"github.com/ib-77/railway/pkg/rop"
)

// Plus combines two independent results. Both sides are always evaluated:
// two successes give a pair, a single failure is propagated, and two failures
// are merged left first.
func Plus[L, R, E any](left rop.Result[L, E], right rop.Result[R, E],
	merge func(left, right E) E) rop.Result[rop.Pair[L, R], E] {

	rop.Require("Plus", "merge", merge)

	switch {
	case left.IsSuccess() && right.IsSuccess():
		return rop.Ok[rop.Pair[L, R], E](rop.PairOf(left.Result(), right.Result()))
	case left.IsSuccess():
		return rop.Fail[rop.Pair[L, R]](right.Err())
	case right.IsSuccess():
		return rop.Fail[rop.Pair[L, R]](left.Err())
	default:
		return rop.Fail[rop.Pair[L, R]](merge(left.Err(), right.Err()))
	}
}

// PlusMerged is Plus with the merge taken from the error type.
func PlusMerged[L, R any, E rop.Combinable[E]](left rop.Result[L, E],
	right rop.Result[R, E]) rop.Result[rop.Pair[L, R], E] {
	return Plus(left, right, rop.Merge[E])
}

// PlusWith is Plus followed by combine on the pair.
func PlusWith[L, R, V, E any](left rop.Result[L, E], right rop.Result[R, E],
	combine func(left L, right R) V,
	merge func(left, right E) E) rop.Result[V, E] {

	rop.Require("PlusWith", "combine", combine)
	rop.Require("PlusWith", "merge", merge)

	return Map(Plus(left, right, merge), func(p rop.Pair[L, R]) V {
		return combine(p.Left, p.Right)
	})
}

// Sum adds two results of the same type using the capabilities of both the
// value and the error type.
func Sum[T rop.Combinable[T], E rop.Combinable[E]](left, right rop.Result[T, E]) rop.Result[T, E] {
	return PlusWith(left, right, rop.Merge[T], rop.Merge[E])
}
