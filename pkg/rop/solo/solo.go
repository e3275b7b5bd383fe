package solo

import (
	"github.com/ib-77/railway/pkg/rop"
)

func Match[T, E, R any](input rop.Result[T, E],
	onOk func(r T) R,
	onFail func(err E) R) R {

	rop.Require("Match", "onOk", onOk)
	rop.Require("Match", "onFail", onFail)

	if input.IsSuccess() {
		return onOk(input.Result())
	}
	return onFail(input.Err())
}

// Bind calls onOk only on success and returns its result as is. A failure is
// passed through unchanged.
func Bind[In, Out, E any](input rop.Result[In, E],
	onOk func(r In) rop.Result[Out, E]) rop.Result[Out, E] {

	rop.Require("Bind", "onOk", onOk)

	return Match(input, onOk, rop.Fail[Out, E])
}

func Map[In, Out, E any](input rop.Result[In, E],
	onOk func(r In) Out) rop.Result[Out, E] {

	rop.Require("Map", "onOk", onOk)

	return Map2(input, onOk, id[E])
}

// Map2 transforms whichever branch input holds.
func Map2[In, Out, E, F any](input rop.Result[In, E],
	onOk func(r In) Out,
	onFail func(err E) F) rop.Result[Out, F] {

	rop.Require("Map2", "onOk", onOk)
	rop.Require("Map2", "onFail", onFail)

	if input.IsSuccess() {
		return rop.Ok[Out, F](onOk(input.Result()))
	}
	return rop.Fail[Out](onFail(input.Err()))
}

func MapError[T, E, F any](input rop.Result[T, E],
	onFail func(err E) F) rop.Result[T, F] {

	rop.Require("MapError", "onFail", onFail)

	return Map2(input, id[T], onFail)
}

func Flatten[T, E any](input rop.Result[rop.Result[T, E], E]) rop.Result[T, E] {
	return Match(input, id[rop.Result[T, E]], rop.Fail[T, E])
}

// Try converts a (value, error) call into a result.
func Try[T any](onTryExecute func() (T, error)) rop.MsgResult[T] {
	rop.Require("Try", "onTryExecute", onTryExecute)

	out, err := onTryExecute()
	if err != nil {
		return rop.FromError[T](err)
	}
	return rop.Success(out)
}

// Attempt binds a (value, error) call after a successful input.
func Attempt[In, Out any](input rop.MsgResult[In],
	onTryExecute func(r In) (Out, error)) rop.MsgResult[Out] {

	rop.Require("Attempt", "onTryExecute", onTryExecute)

	return Bind(input, func(r In) rop.MsgResult[Out] {
		return Try(func() (Out, error) {
			return onTryExecute(r)
		})
	})
}

func id[T any](v T) T {
	return v
}
