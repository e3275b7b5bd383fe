package maybe

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
)

func MatchAsync[T, R any](input rop.Option[T],
	onSome func(v T) *future.Future[R],
	onNone func() *future.Future[R]) *future.Future[R] {

	rop.Require("MatchAsync", "onSome", onSome)
	rop.Require("MatchAsync", "onNone", onNone)

	return Match(input, onSome, onNone)
}

func SwitchAsync[T any](input rop.Option[T],
	onSome func(v T) *future.Future[rop.Unit],
	onNone func() *future.Future[rop.Unit]) *future.Future[rop.Unit] {

	rop.Require("SwitchAsync", "onSome", onSome)
	rop.Require("SwitchAsync", "onNone", onNone)

	return Match(input, onSome, onNone)
}

func BindAsync[In, Out any](input rop.Option[In],
	onSome func(v In) *future.Future[rop.Option[Out]]) *future.Future[rop.Option[Out]] {

	rop.Require("BindAsync", "onSome", onSome)

	return Match(input, onSome, resolvedNone[Out])
}

func MapAsync[In, Out any](input rop.Option[In],
	onSome func(v In) *future.Future[Out]) *future.Future[rop.Option[Out]] {

	rop.Require("MapAsync", "onSome", onSome)

	return BindAsync(input, func(v In) *future.Future[rop.Option[Out]] {
		return future.Then(onSome(v), rop.Some[Out])
	})
}

func TeeAsync[T any](input rop.Option[T],
	action func(v T) *future.Future[rop.Unit]) *future.Future[rop.Option[T]] {

	rop.Require("TeeAsync", "action", action)

	return MapAsync(input, func(v T) *future.Future[T] {
		return future.Then(action(v), func(rop.Unit) T { return v })
	})
}

func FoldAsync[T, R any](input rop.Option[T], seed R,
	step func(acc R, v T) *future.Future[R]) *future.Future[R] {

	rop.Require("FoldAsync", "step", step)

	return Match(input,
		func(v T) *future.Future[R] { return step(seed, v) },
		func() *future.Future[R] { return future.Resolved(seed) })
}

func FoldUntilAsync[T, R any](input rop.Option[T], seed R,
	step func(acc R, v T) *future.Future[rop.Option[R]]) *future.Future[rop.Option[R]] {

	rop.Require("FoldUntilAsync", "step", step)

	return Match(input,
		func(v T) *future.Future[rop.Option[R]] { return step(seed, v) },
		func() *future.Future[rop.Option[R]] { return future.Resolved(rop.Some(seed)) })
}

func OrAsync[T any](input rop.Option[T], other *future.Future[T]) *future.Future[T] {
	rop.Require("OrAsync", "other", other)

	return Match(input, future.Resolved[T], func() *future.Future[T] { return other })
}

func OrElseAsync[T any](input rop.Option[T], other func() *future.Future[T]) *future.Future[T] {
	rop.Require("OrElseAsync", "other", other)

	return Match(input, future.Resolved[T], other)
}

// OrOptionAsync keeps a Some and falls back to other on None.
func OrOptionAsync[T any](input rop.Option[T], other *future.Future[rop.Option[T]]) *future.Future[rop.Option[T]] {
	rop.Require("OrOptionAsync", "other", other)

	return Match(input,
		func(v T) *future.Future[rop.Option[T]] { return future.Resolved(rop.Some(v)) },
		func() *future.Future[rop.Option[T]] { return other })
}

func OrElseOptionAsync[T any](input rop.Option[T],
	other func() *future.Future[rop.Option[T]]) *future.Future[rop.Option[T]] {

	rop.Require("OrElseOptionAsync", "other", other)

	return Match(input,
		func(v T) *future.Future[rop.Option[T]] { return future.Resolved(rop.Some(v)) },
		other)
}

// UnwrapAsync moves the future out of Some.
func UnwrapAsync[T any](input rop.Option[*future.Future[T]]) *future.Future[rop.Option[T]] {
	return MapAsync(input, func(f *future.Future[T]) *future.Future[T] { return f })
}

// SomeAsync wraps the eventual value of f in Some.
func SomeAsync[T any](f *future.Future[T]) *future.Future[rop.Option[T]] {
	rop.Require("SomeAsync", "f", f)

	return future.Then(f, rop.Some[T])
}

func resolvedNone[T any]() *future.Future[rop.Option[T]] {
	return future.Resolved(rop.None[T]())
}
