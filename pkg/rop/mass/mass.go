package mass

import (
	"iter"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/maybe"
)

// Fold is an unconditional left fold over the Some values.
func Fold[T, R any](values iter.Seq[rop.Option[T]], seed R, step func(acc R, v T) R) R {
	rop.Require("Fold", "values", values)
	rop.Require("Fold", "step", step)

	r, _ := foldUntil(values, seed, func(acc R, v T) (rop.Option[R], error) {
		return rop.Some(step(acc, v)), nil
	})
	return r.Or(seed)
}

// FoldFrom folds into an optional seed; a None seed skips the walk.
func FoldFrom[T, R any](values iter.Seq[rop.Option[T]], seed rop.Option[R], step func(acc R, v T) R) rop.Option[R] {
	rop.Require("FoldFrom", "values", values)
	rop.Require("FoldFrom", "step", step)

	return maybe.Map(seed, func(s R) R {
		return Fold(values, s, step)
	})
}

// FoldUntil stops at the first None returned by step; later elements are not
// visited and the result is None.
func FoldUntil[T, R any](values iter.Seq[rop.Option[T]], seed R, step func(acc R, v T) rop.Option[R]) rop.Option[R] {
	rop.Require("FoldUntil", "values", values)
	rop.Require("FoldUntil", "step", step)

	r, _ := foldUntil(values, seed, func(acc R, v T) (rop.Option[R], error) {
		return step(acc, v), nil
	})
	return r
}

// Reduce folds values seeded by the first Some. None when there is no Some.
func Reduce[T any](values iter.Seq[rop.Option[T]], step func(acc, v T) T) rop.Option[T] {
	rop.Require("Reduce", "values", values)
	rop.Require("Reduce", "step", step)

	r, _ := reduceUntil(values, func(acc, v T) (rop.Option[T], error) {
		return rop.Some(step(acc, v)), nil
	})
	return r
}

func ReduceUntil[T any](values iter.Seq[rop.Option[T]], step func(acc, v T) rop.Option[T]) rop.Option[T] {
	rop.Require("ReduceUntil", "values", values)
	rop.Require("ReduceUntil", "step", step)

	r, _ := reduceUntil(values, func(acc, v T) (rop.Option[T], error) {
		return step(acc, v), nil
	})
	return r
}

// TryReduce is Reduce where a step error or panic yields None instead of
// escaping.
func TryReduce[T any](values iter.Seq[rop.Option[T]], step func(acc, v T) (T, error)) rop.Option[T] {
	rop.Require("TryReduce", "values", values)
	rop.Require("TryReduce", "step", step)

	return TryReduceUntil(values, func(acc, v T) (rop.Option[T], error) {
		r, err := step(acc, v)
		return rop.Some(r), err
	})
}

func TryReduceUntil[T any](values iter.Seq[rop.Option[T]], step func(acc, v T) (rop.Option[T], error)) rop.Option[T] {
	rop.Require("TryReduceUntil", "values", values)
	rop.Require("TryReduceUntil", "step", step)

	r, err := reduceUntil(values, func(acc, v T) (rop.Option[T], error) {
		return guarded(step, acc, v)
	})
	return maybe.Flatten(nest(r, err))
}

// Unroll gathers every value, or gives None as soon as one element is None.
func Unroll[T any](values iter.Seq[rop.Option[T]]) rop.Option[[]T] {
	rop.Require("Unroll", "values", values)

	out := []T{}
	for o := range values {
		v, ok := o.Get()
		if !ok {
			return rop.None[[]T]()
		}
		out = append(out, v)
	}
	return rop.Some(out)
}
