package lite

import (
	"iter"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Plus awaits left, then right, and combines them with solo.Plus. Both
// operands are always awaited.
func Plus[L, R, E any](left *future.Future[rop.Result[L, E]], right *future.Future[rop.Result[R, E]],
	merge func(left, right E) E) *future.Future[rop.Result[rop.Pair[L, R], E]] {

	rop.Require("Plus", "right", right)
	rop.Require("Plus", "merge", merge)

	return LiftAsync(left, func(l rop.Result[L, E]) *future.Future[rop.Result[rop.Pair[L, R], E]] {
		return solo.PlusAsync(l, right, merge)
	})
}

func PlusMerged[L, R any, E rop.Combinable[E]](left *future.Future[rop.Result[L, E]],
	right *future.Future[rop.Result[R, E]]) *future.Future[rop.Result[rop.Pair[L, R], E]] {
	return Plus(left, right, rop.Merge[E])
}

func PlusWith[L, R, V, E any](left *future.Future[rop.Result[L, E]], right *future.Future[rop.Result[R, E]],
	combine func(left L, right R) V,
	merge func(left, right E) E) *future.Future[rop.Result[V, E]] {

	rop.Require("PlusWith", "right", right)
	rop.Require("PlusWith", "combine", combine)
	rop.Require("PlusWith", "merge", merge)

	return LiftAsync(left, func(l rop.Result[L, E]) *future.Future[rop.Result[V, E]] {
		return Lift(right, func(r rop.Result[R, E]) rop.Result[V, E] {
			return solo.PlusWith(l, r, combine, merge)
		})
	})
}

func Sum[T rop.Combinable[T], E rop.Combinable[E]](left, right *future.Future[rop.Result[T, E]]) *future.Future[rop.Result[T, E]] {
	return PlusWith(left, right, rop.Merge[T], rop.Merge[E])
}

// Fold awaits the futures one by one and folds them with solo.Fold. A faulted
// future stops the walk and faults the result.
func Fold[Acc, T, E any](values iter.Seq[*future.Future[rop.Result[T, E]]], seed Acc,
	aggregate func(acc Acc, v T) Acc,
	merge func(left, right E) E) *future.Future[rop.Result[Acc, E]] {

	rop.Require("Fold", "values", values)
	rop.Require("Fold", "aggregate", aggregate)
	rop.Require("Fold", "merge", merge)

	return future.Go(func() (rop.Result[Acc, E], error) {
		awaited, fault := awaitAll(values)
		out := solo.Fold(awaited, seed, aggregate, merge)
		return out, *fault
	})
}

func Unroll[T, E any](values iter.Seq[*future.Future[rop.Result[T, E]]],
	merge func(left, right E) E) *future.Future[rop.Result[[]T, E]] {

	rop.Require("Unroll", "values", values)
	rop.Require("Unroll", "merge", merge)

	return future.Go(func() (rop.Result[[]T, E], error) {
		awaited, fault := awaitAll(values)
		out := solo.Unroll(awaited, merge)
		return out, *fault
	})
}

// awaitAll yields the outcome of each future in order and stops at the first
// fault, which it records.
func awaitAll[T any](values iter.Seq[*future.Future[T]]) (iter.Seq[T], *error) {
	var fault error
	return func(yield func(T) bool) {
		for f := range values {
			v, err := f.Wait()
			if err != nil {
				fault = err
				return
			}
			if !yield(v) {
				return
			}
		}
	}, &fault
}
