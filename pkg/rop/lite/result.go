package lite

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
	"github.com/ib-77/railway/pkg/rop/solo"
)

func Match[T, E, R any](input *future.Future[rop.Result[T, E]],
	onOk func(r T) R,
	onFail func(err E) R) *future.Future[R] {

	rop.Require("Match", "onOk", onOk)
	rop.Require("Match", "onFail", onFail)

	return Lift(input, func(r rop.Result[T, E]) R {
		return solo.Match(r, onOk, onFail)
	})
}

func MatchAsync[T, E, R any](input *future.Future[rop.Result[T, E]],
	onOk func(r T) *future.Future[R],
	onFail func(err E) *future.Future[R]) *future.Future[R] {

	rop.Require("MatchAsync", "onOk", onOk)
	rop.Require("MatchAsync", "onFail", onFail)

	return LiftAsync(input, func(r rop.Result[T, E]) *future.Future[R] {
		return solo.MatchAsync(r, onOk, onFail)
	})
}

// Switch resolves once the handler for the branch has run.
func Switch[T, E any](input *future.Future[rop.Result[T, E]],
	onOk func(r T),
	onFail func(err E)) *future.Future[rop.Unit] {

	rop.Require("Switch", "onOk", onOk)
	rop.Require("Switch", "onFail", onFail)

	return Lift(input, func(r rop.Result[T, E]) rop.Unit {
		r.Switch(onOk, onFail)
		return rop.Unit{}
	})
}

func Bind[In, Out, E any](input *future.Future[rop.Result[In, E]],
	onOk func(r In) rop.Result[Out, E]) *future.Future[rop.Result[Out, E]] {

	rop.Require("Bind", "onOk", onOk)

	return Lift(input, func(r rop.Result[In, E]) rop.Result[Out, E] {
		return solo.Bind(r, onOk)
	})
}

func BindAsync[In, Out, E any](input *future.Future[rop.Result[In, E]],
	onOk func(r In) *future.Future[rop.Result[Out, E]]) *future.Future[rop.Result[Out, E]] {

	rop.Require("BindAsync", "onOk", onOk)

	return LiftAsync(input, func(r rop.Result[In, E]) *future.Future[rop.Result[Out, E]] {
		return solo.BindAsync(r, onOk)
	})
}

func Map[In, Out, E any](input *future.Future[rop.Result[In, E]],
	onOk func(r In) Out) *future.Future[rop.Result[Out, E]] {

	rop.Require("Map", "onOk", onOk)

	return Lift(input, func(r rop.Result[In, E]) rop.Result[Out, E] {
		return solo.Map(r, onOk)
	})
}

func MapAsync[In, Out, E any](input *future.Future[rop.Result[In, E]],
	onOk func(r In) *future.Future[Out]) *future.Future[rop.Result[Out, E]] {

	rop.Require("MapAsync", "onOk", onOk)

	return LiftAsync(input, func(r rop.Result[In, E]) *future.Future[rop.Result[Out, E]] {
		return solo.MapAsync(r, onOk)
	})
}

func Map2[In, Out, E, F any](input *future.Future[rop.Result[In, E]],
	onOk func(r In) Out,
	onFail func(err E) F) *future.Future[rop.Result[Out, F]] {

	rop.Require("Map2", "onOk", onOk)
	rop.Require("Map2", "onFail", onFail)

	return Lift(input, func(r rop.Result[In, E]) rop.Result[Out, F] {
		return solo.Map2(r, onOk, onFail)
	})
}

func Map2Async[In, Out, E, F any](input *future.Future[rop.Result[In, E]],
	onOk func(r In) *future.Future[Out],
	onFail func(err E) *future.Future[F]) *future.Future[rop.Result[Out, F]] {

	rop.Require("Map2Async", "onOk", onOk)
	rop.Require("Map2Async", "onFail", onFail)

	return LiftAsync(input, func(r rop.Result[In, E]) *future.Future[rop.Result[Out, F]] {
		return solo.Map2Async(r, onOk, onFail)
	})
}

func MapError[T, E, F any](input *future.Future[rop.Result[T, E]],
	onFail func(err E) F) *future.Future[rop.Result[T, F]] {

	rop.Require("MapError", "onFail", onFail)

	return Lift(input, func(r rop.Result[T, E]) rop.Result[T, F] {
		return solo.MapError(r, onFail)
	})
}

func MapErrorAsync[T, E, F any](input *future.Future[rop.Result[T, E]],
	onFail func(err E) *future.Future[F]) *future.Future[rop.Result[T, F]] {

	rop.Require("MapErrorAsync", "onFail", onFail)

	return LiftAsync(input, func(r rop.Result[T, E]) *future.Future[rop.Result[T, F]] {
		return solo.MapErrorAsync(r, onFail)
	})
}

func Tee[T, E any](input *future.Future[rop.Result[T, E]],
	action func(r T)) *future.Future[rop.Result[T, E]] {

	rop.Require("Tee", "action", action)

	return Lift(input, func(r rop.Result[T, E]) rop.Result[T, E] {
		return r.Tee(action)
	})
}

func TeeAsync[T, E any](input *future.Future[rop.Result[T, E]],
	action func(r T) *future.Future[rop.Unit]) *future.Future[rop.Result[T, E]] {

	rop.Require("TeeAsync", "action", action)

	return LiftAsync(input, func(r rop.Result[T, E]) *future.Future[rop.Result[T, E]] {
		return solo.TeeAsync(r, action)
	})
}

func TeeError[T, E any](input *future.Future[rop.Result[T, E]],
	action func(err E)) *future.Future[rop.Result[T, E]] {

	rop.Require("TeeError", "action", action)

	return Lift(input, func(r rop.Result[T, E]) rop.Result[T, E] {
		return r.TeeError(action)
	})
}

func TeeErrorAsync[T, E any](input *future.Future[rop.Result[T, E]],
	action func(err E) *future.Future[rop.Unit]) *future.Future[rop.Result[T, E]] {

	rop.Require("TeeErrorAsync", "action", action)

	return LiftAsync(input, func(r rop.Result[T, E]) *future.Future[rop.Result[T, E]] {
		return solo.TeeErrorAsync(r, action)
	})
}

func Flatten[T, E any](input *future.Future[rop.Result[rop.Result[T, E], E]]) *future.Future[rop.Result[T, E]] {
	return Lift(input, solo.Flatten[T, E])
}

func MapTo[T, E any](input *future.Future[rop.VoidResult[E]], value T) *future.Future[rop.Result[T, E]] {
	return Lift(input, func(r rop.VoidResult[E]) rop.Result[T, E] {
		return solo.MapTo(r, value)
	})
}
