package solo

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
)

// The functions below take an immediate result and a deferred function. A
// deferred function is only started on the branch the immediate form would
// take; the other branch resolves at once.

func MatchAsync[T, E, R any](input rop.Result[T, E],
	onOk func(r T) *future.Future[R],
	onFail func(err E) *future.Future[R]) *future.Future[R] {

	rop.Require("MatchAsync", "onOk", onOk)
	rop.Require("MatchAsync", "onFail", onFail)

	return Match(input, onOk, onFail)
}

func SwitchAsync[T, E any](input rop.Result[T, E],
	onOk func(r T) *future.Future[rop.Unit],
	onFail func(err E) *future.Future[rop.Unit]) *future.Future[rop.Unit] {

	rop.Require("SwitchAsync", "onOk", onOk)
	rop.Require("SwitchAsync", "onFail", onFail)

	return Match(input, onOk, onFail)
}

func BindAsync[In, Out, E any](input rop.Result[In, E],
	onOk func(r In) *future.Future[rop.Result[Out, E]]) *future.Future[rop.Result[Out, E]] {

	rop.Require("BindAsync", "onOk", onOk)

	return Match(input, onOk, func(err E) *future.Future[rop.Result[Out, E]] {
		return future.Resolved(rop.Fail[Out](err))
	})
}

func MapAsync[In, Out, E any](input rop.Result[In, E],
	onOk func(r In) *future.Future[Out]) *future.Future[rop.Result[Out, E]] {

	rop.Require("MapAsync", "onOk", onOk)

	return Match(input,
		func(r In) *future.Future[rop.Result[Out, E]] {
			return future.Then(onOk(r), rop.Ok[Out, E])
		},
		func(err E) *future.Future[rop.Result[Out, E]] {
			return future.Resolved(rop.Fail[Out](err))
		})
}

func Map2Async[In, Out, E, F any](input rop.Result[In, E],
	onOk func(r In) *future.Future[Out],
	onFail func(err E) *future.Future[F]) *future.Future[rop.Result[Out, F]] {

	rop.Require("Map2Async", "onOk", onOk)
	rop.Require("Map2Async", "onFail", onFail)

	return Match(input,
		func(r In) *future.Future[rop.Result[Out, F]] {
			return future.Then(onOk(r), rop.Ok[Out, F])
		},
		func(err E) *future.Future[rop.Result[Out, F]] {
			return future.Then(onFail(err), rop.Fail[Out, F])
		})
}

func MapErrorAsync[T, E, F any](input rop.Result[T, E],
	onFail func(err E) *future.Future[F]) *future.Future[rop.Result[T, F]] {

	rop.Require("MapErrorAsync", "onFail", onFail)

	return Match(input,
		func(r T) *future.Future[rop.Result[T, F]] {
			return future.Resolved(rop.Ok[T, F](r))
		},
		func(err E) *future.Future[rop.Result[T, F]] {
			return future.Then(onFail(err), rop.Fail[T, F])
		})
}

// TeeAsync waits for action on success, then yields input unchanged.
func TeeAsync[T, E any](input rop.Result[T, E],
	action func(r T) *future.Future[rop.Unit]) *future.Future[rop.Result[T, E]] {

	rop.Require("TeeAsync", "action", action)

	return MapAsync(input, func(r T) *future.Future[T] {
		return future.Then(action(r), func(rop.Unit) T { return r })
	})
}

func TeeErrorAsync[T, E any](input rop.Result[T, E],
	action func(err E) *future.Future[rop.Unit]) *future.Future[rop.Result[T, E]] {

	rop.Require("TeeErrorAsync", "action", action)

	return MapErrorAsync(input, func(err E) *future.Future[E] {
		return future.Then(action(err), func(rop.Unit) E { return err })
	})
}

func MapToAsync[T, E any](input rop.VoidResult[E],
	value *future.Future[T]) *future.Future[rop.Result[T, E]] {

	rop.Require("MapToAsync", "value", value)

	return MapAsync(input, func(rop.Unit) *future.Future[T] { return value })
}

// PlusAsync is Plus with a deferred right operand. The right side is always
// awaited, even when left has failed.
func PlusAsync[L, R, E any](left rop.Result[L, E], right *future.Future[rop.Result[R, E]],
	merge func(left, right E) E) *future.Future[rop.Result[rop.Pair[L, R], E]] {

	rop.Require("PlusAsync", "right", right)
	rop.Require("PlusAsync", "merge", merge)

	return future.Then(right, func(r rop.Result[R, E]) rop.Result[rop.Pair[L, R], E] {
		return Plus(left, r, merge)
	})
}

// UnwrapAsync moves the future out of the success branch.
func UnwrapAsync[T, E any](input rop.Result[*future.Future[T], E]) *future.Future[rop.Result[T, E]] {
	return MapAsync(input, id[*future.Future[T]])
}

// UnwrapErrorAsync moves the future out of the failure branch.
func UnwrapErrorAsync[T, E any](input rop.Result[T, *future.Future[E]]) *future.Future[rop.Result[T, E]] {
	return MapErrorAsync(input, id[*future.Future[E]])
}
