package rop

import "fmt"

// Result holds either a success value of type T or an error payload of type E.
// The zero value is a failure carrying the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// Result returns the success value, or the zero T on failure.
func (r Result[T, E]) Result() T {
	return r.value
}

// Err returns the error payload, or the zero E on success.
func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// Switch runs exactly one of the handlers.
func (r Result[T, E]) Switch(onOk func(T), onFail func(E)) {
	Require("Switch", "onOk", onOk)
	Require("Switch", "onFail", onFail)

	if r.ok {
		onOk(r.value)
	} else {
		onFail(r.err)
	}
}

// Tee runs a side effect on success and returns r unchanged.
func (r Result[T, E]) Tee(action func(T)) Result[T, E] {
	Require("Tee", "action", action)

	if r.ok {
		action(r.value)
	}
	return r
}

// TeeError runs a side effect on failure and returns r unchanged.
func (r Result[T, E]) TeeError(action func(E)) Result[T, E] {
	Require("TeeError", "action", action)

	if !r.ok {
		action(r.err)
	}
	return r
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Fail(%v)", r.err)
}
