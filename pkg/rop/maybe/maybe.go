package maybe

import (
	"github.com/ib-77/railway/pkg/rop"
)

func Match[T, R any](input rop.Option[T], onSome func(v T) R, onNone func() R) R {
	rop.Require("Match", "onSome", onSome)
	rop.Require("Match", "onNone", onNone)

	if v, ok := input.Get(); ok {
		return onSome(v)
	}
	return onNone()
}

func Bind[In, Out any](input rop.Option[In], onSome func(v In) rop.Option[Out]) rop.Option[Out] {
	rop.Require("Bind", "onSome", onSome)

	return Match(input, onSome, rop.None[Out])
}

func Map[In, Out any](input rop.Option[In], onSome func(v In) Out) rop.Option[Out] {
	rop.Require("Map", "onSome", onSome)

	return Bind(input, func(v In) rop.Option[Out] {
		return rop.Some(onSome(v))
	})
}

func Flatten[T any](input rop.Option[rop.Option[T]]) rop.Option[T] {
	return Match(input, func(v rop.Option[T]) rop.Option[T] { return v }, rop.None[T])
}

// Fold applies step to seed and the value, or returns seed on None.
func Fold[T, R any](input rop.Option[T], seed R, step func(acc R, v T) R) R {
	rop.Require("Fold", "step", step)

	return Match(input,
		func(v T) R { return step(seed, v) },
		func() R { return seed })
}

// FoldUntil is Fold with a step that may stop by returning None. On None
// input the seed is kept.
func FoldUntil[T, R any](input rop.Option[T], seed R, step func(acc R, v T) rop.Option[R]) rop.Option[R] {
	rop.Require("FoldUntil", "step", step)

	return Match(input,
		func(v T) rop.Option[R] { return step(seed, v) },
		func() rop.Option[R] { return rop.Some(seed) })
}

func ToResult[T, E any](input rop.Option[T], err E) rop.Result[T, E] {
	if v, ok := input.Get(); ok {
		return rop.Ok[T, E](v)
	}
	return rop.Fail[T](err)
}

// FromResult keeps the success value and drops the error.
func FromResult[T, E any](input rop.Result[T, E]) rop.Option[T] {
	v, ok := input.Get()
	return rop.OptionOf(v, ok)
}
