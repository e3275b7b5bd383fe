package mass

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
	"github.com/ib-77/railway/pkg/rop/maybe"
)

// The Async reductions run the walk on its own goroutine and await each step
// before pulling the next element, so steps never overlap. A faulted step
// faults the returned future, except in the Try variants where it yields None.

func FoldAsync[T, R any](values iter.Seq[rop.Option[T]], seed R,
	step func(acc R, v T) *future.Future[R]) *future.Future[R] {

	rop.Require("FoldAsync", "values", values)
	rop.Require("FoldAsync", "step", step)

	return future.Go(func() (R, error) {
		r, err := foldUntil(values, seed, func(acc R, v T) (rop.Option[R], error) {
			return awaitSome(step(acc, v))
		})
		return r.Or(seed), err
	})
}

func FoldFromAsync[T, R any](values iter.Seq[rop.Option[T]], seed rop.Option[R],
	step func(acc R, v T) *future.Future[R]) *future.Future[rop.Option[R]] {

	rop.Require("FoldFromAsync", "values", values)
	rop.Require("FoldFromAsync", "step", step)

	return maybe.MapAsync(seed, func(s R) *future.Future[R] {
		return FoldAsync(values, s, step)
	})
}

func FoldUntilAsync[T, R any](values iter.Seq[rop.Option[T]], seed R,
	step func(acc R, v T) *future.Future[rop.Option[R]]) *future.Future[rop.Option[R]] {

	rop.Require("FoldUntilAsync", "values", values)
	rop.Require("FoldUntilAsync", "step", step)

	return future.Go(func() (rop.Option[R], error) {
		return foldUntil(values, seed, func(acc R, v T) (rop.Option[R], error) {
			return awaitOption(step(acc, v))
		})
	})
}

func ReduceAsync[T any](values iter.Seq[rop.Option[T]],
	step func(acc, v T) *future.Future[T]) *future.Future[rop.Option[T]] {

	rop.Require("ReduceAsync", "values", values)
	rop.Require("ReduceAsync", "step", step)

	return future.Go(func() (rop.Option[T], error) {
		return reduceUntil(values, func(acc, v T) (rop.Option[T], error) {
			return awaitSome(step(acc, v))
		})
	})
}

func ReduceUntilAsync[T any](values iter.Seq[rop.Option[T]],
	step func(acc, v T) *future.Future[rop.Option[T]]) *future.Future[rop.Option[T]] {

	rop.Require("ReduceUntilAsync", "values", values)
	rop.Require("ReduceUntilAsync", "step", step)

	return future.Go(func() (rop.Option[T], error) {
		return reduceUntil(values, func(acc, v T) (rop.Option[T], error) {
			return awaitOption(step(acc, v))
		})
	})
}

func TryReduceAsync[T any](values iter.Seq[rop.Option[T]],
	step func(acc, v T) *future.Future[T]) *future.Future[rop.Option[T]] {

	rop.Require("TryReduceAsync", "values", values)
	rop.Require("TryReduceAsync", "step", step)

	return tryReduceAsync(values, func(acc, v T) (rop.Option[T], error) {
		return awaitSome(step(acc, v))
	})
}

func TryReduceUntilAsync[T any](values iter.Seq[rop.Option[T]],
	step func(acc, v T) *future.Future[rop.Option[T]]) *future.Future[rop.Option[T]] {

	rop.Require("TryReduceUntilAsync", "values", values)
	rop.Require("TryReduceUntilAsync", "step", step)

	return tryReduceAsync(values, func(acc, v T) (rop.Option[T], error) {
		return awaitOption(step(acc, v))
	})
}

func tryReduceAsync[T any](values iter.Seq[rop.Option[T]],
	step func(acc, v T) (rop.Option[T], error)) *future.Future[rop.Option[T]] {

	nested := future.Async(func() rop.Option[rop.Option[T]] {
		r, err := reduceUntil(values, func(acc, v T) (rop.Option[T], error) {
			return guarded(step, acc, v)
		})
		return nest(r, err)
	})
	return future.Then(nested, maybe.Flatten[T])
}

// WhenAll awaits every future in order. The result is None if any element is
// None; a faulted future faults the result. A nil slice counts as empty.
func WhenAll[T any](values []rop.Option[*future.Future[T]]) *future.Future[rop.Option[[]T]] {
	return future.Go(func() (rop.Option[[]T], error) {
		out := make([]rop.Option[T], 0, len(values))
		for i, v := range values {
			o, err := maybe.UnwrapAsync(v).Wait()
			if err != nil {
				return rop.None[[]T](), fmt.Errorf("mass: WhenAll: element %d: %w", i, err)
			}
			out = append(out, o)
		}
		return Unroll(slices.Values(out)), nil
	})
}
