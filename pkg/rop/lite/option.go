package lite

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
	"github.com/ib-77/railway/pkg/rop/maybe"
)

func MatchOption[T, R any](input *future.Future[rop.Option[T]],
	onSome func(v T) R,
	onNone func() R) *future.Future[R] {

	rop.Require("MatchOption", "onSome", onSome)
	rop.Require("MatchOption", "onNone", onNone)

	return Lift(input, func(o rop.Option[T]) R {
		return maybe.Match(o, onSome, onNone)
	})
}

func MatchOptionAsync[T, R any](input *future.Future[rop.Option[T]],
	onSome func(v T) *future.Future[R],
	onNone func() *future.Future[R]) *future.Future[R] {

	rop.Require("MatchOptionAsync", "onSome", onSome)
	rop.Require("MatchOptionAsync", "onNone", onNone)

	return LiftAsync(input, func(o rop.Option[T]) *future.Future[R] {
		return maybe.MatchAsync(o, onSome, onNone)
	})
}

func SwitchOption[T any](input *future.Future[rop.Option[T]],
	onSome func(v T),
	onNone func()) *future.Future[rop.Unit] {

	rop.Require("SwitchOption", "onSome", onSome)
	rop.Require("SwitchOption", "onNone", onNone)

	return Lift(input, func(o rop.Option[T]) rop.Unit {
		o.Switch(onSome, onNone)
		return rop.Unit{}
	})
}

// SwitchOptionAsync resolves once the future of the handler for the branch has.
func SwitchOptionAsync[T any](input *future.Future[rop.Option[T]],
	onSome func(v T) *future.Future[rop.Unit],
	onNone func() *future.Future[rop.Unit]) *future.Future[rop.Unit] {

	rop.Require("SwitchOptionAsync", "onSome", onSome)
	rop.Require("SwitchOptionAsync", "onNone", onNone)

	return LiftAsync(input, func(o rop.Option[T]) *future.Future[rop.Unit] {
		return maybe.SwitchAsync(o, onSome, onNone)
	})
}

func BindOption[In, Out any](input *future.Future[rop.Option[In]],
	onSome func(v In) rop.Option[Out]) *future.Future[rop.Option[Out]] {

	rop.Require("BindOption", "onSome", onSome)

	return Lift(input, func(o rop.Option[In]) rop.Option[Out] {
		return maybe.Bind(o, onSome)
	})
}

func BindOptionAsync[In, Out any](input *future.Future[rop.Option[In]],
	onSome func(v In) *future.Future[rop.Option[Out]]) *future.Future[rop.Option[Out]] {

	rop.Require("BindOptionAsync", "onSome", onSome)

	return LiftAsync(input, func(o rop.Option[In]) *future.Future[rop.Option[Out]] {
		return maybe.BindAsync(o, onSome)
	})
}

func MapOption[In, Out any](input *future.Future[rop.Option[In]],
	onSome func(v In) Out) *future.Future[rop.Option[Out]] {

	rop.Require("MapOption", "onSome", onSome)

	return Lift(input, func(o rop.Option[In]) rop.Option[Out] {
		return maybe.Map(o, onSome)
	})
}

func MapOptionAsync[In, Out any](input *future.Future[rop.Option[In]],
	onSome func(v In) *future.Future[Out]) *future.Future[rop.Option[Out]] {

	rop.Require("MapOptionAsync", "onSome", onSome)

	return LiftAsync(input, func(o rop.Option[In]) *future.Future[rop.Option[Out]] {
		return maybe.MapAsync(o, onSome)
	})
}

func TeeOption[T any](input *future.Future[rop.Option[T]], action func(v T)) *future.Future[rop.Option[T]] {
	rop.Require("TeeOption", "action", action)

	return Lift(input, func(o rop.Option[T]) rop.Option[T] {
		return o.Tee(action)
	})
}

func TeeOptionAsync[T any](input *future.Future[rop.Option[T]],
	action func(v T) *future.Future[rop.Unit]) *future.Future[rop.Option[T]] {

	rop.Require("TeeOptionAsync", "action", action)

	return LiftAsync(input, func(o rop.Option[T]) *future.Future[rop.Option[T]] {
		return maybe.TeeAsync(o, action)
	})
}

func FlattenOption[T any](input *future.Future[rop.Option[rop.Option[T]]]) *future.Future[rop.Option[T]] {
	return Lift(input, maybe.Flatten[T])
}

func FoldOption[T, R any](input *future.Future[rop.Option[T]], seed R,
	step func(acc R, v T) R) *future.Future[R] {

	rop.Require("FoldOption", "step", step)

	return Lift(input, func(o rop.Option[T]) R {
		return maybe.Fold(o, seed, step)
	})
}

func FoldOptionAsync[T, R any](input *future.Future[rop.Option[T]], seed R,
	step func(acc R, v T) *future.Future[R]) *future.Future[R] {

	rop.Require("FoldOptionAsync", "step", step)

	return LiftAsync(input, func(o rop.Option[T]) *future.Future[R] {
		return maybe.FoldAsync(o, seed, step)
	})
}

func FoldUntilOption[T, R any](input *future.Future[rop.Option[T]], seed R,
	step func(acc R, v T) rop.Option[R]) *future.Future[rop.Option[R]] {

	rop.Require("FoldUntilOption", "step", step)

	return Lift(input, func(o rop.Option[T]) rop.Option[R] {
		return maybe.FoldUntil(o, seed, step)
	})
}

func FoldUntilOptionAsync[T, R any](input *future.Future[rop.Option[T]], seed R,
	step func(acc R, v T) *future.Future[rop.Option[R]]) *future.Future[rop.Option[R]] {

	rop.Require("FoldUntilOptionAsync", "step", step)

	return LiftAsync(input, func(o rop.Option[T]) *future.Future[rop.Option[R]] {
		return maybe.FoldUntilAsync(o, seed, step)
	})
}

func OrOption[T any](input *future.Future[rop.Option[T]], other T) *future.Future[T] {
	return Lift(input, func(o rop.Option[T]) T {
		return o.Or(other)
	})
}

func OrElseOption[T any](input *future.Future[rop.Option[T]], other func() T) *future.Future[T] {
	rop.Require("OrElseOption", "other", other)

	return Lift(input, func(o rop.Option[T]) T {
		return o.OrElse(other)
	})
}

// OrOptionAsync falls back to other on None. other is only awaited then.
func OrOptionAsync[T any](input *future.Future[rop.Option[T]], other *future.Future[T]) *future.Future[T] {
	rop.Require("OrOptionAsync", "other", other)

	return LiftAsync(input, func(o rop.Option[T]) *future.Future[T] {
		return maybe.OrAsync(o, other)
	})
}

func OrElseOptionAsync[T any](input *future.Future[rop.Option[T]],
	other func() *future.Future[T]) *future.Future[T] {

	rop.Require("OrElseOptionAsync", "other", other)

	return LiftAsync(input, func(o rop.Option[T]) *future.Future[T] {
		return maybe.OrElseAsync(o, other)
	})
}

// FallbackOption keeps a Some and replaces a None with other.
func FallbackOption[T any](input *future.Future[rop.Option[T]], other rop.Option[T]) *future.Future[rop.Option[T]] {
	return Lift(input, func(o rop.Option[T]) rop.Option[T] {
		return o.OrOption(other)
	})
}

func FallbackOptionElse[T any](input *future.Future[rop.Option[T]],
	other func() rop.Option[T]) *future.Future[rop.Option[T]] {

	rop.Require("FallbackOptionElse", "other", other)

	return Lift(input, func(o rop.Option[T]) rop.Option[T] {
		return o.OrElseOption(other)
	})
}

// FallbackOptionAsync awaits other only when input resolves to None.
func FallbackOptionAsync[T any](input *future.Future[rop.Option[T]],
	other *future.Future[rop.Option[T]]) *future.Future[rop.Option[T]] {

	rop.Require("FallbackOptionAsync", "other", other)

	return LiftAsync(input, func(o rop.Option[T]) *future.Future[rop.Option[T]] {
		return maybe.OrOptionAsync(o, other)
	})
}

func FallbackOptionElseAsync[T any](input *future.Future[rop.Option[T]],
	other func() *future.Future[rop.Option[T]]) *future.Future[rop.Option[T]] {

	rop.Require("FallbackOptionElseAsync", "other", other)

	return LiftAsync(input, func(o rop.Option[T]) *future.Future[rop.Option[T]] {
		return maybe.OrElseOptionAsync(o, other)
	})
}
