package rop

import (
	"iter"
	"strings"
)

// Errors is an ordered list of error messages, the error payload of MsgResult.
type Errors []string

// MsgResult is a Result whose failure is a list of messages.
type MsgResult[T any] = Result[T, Errors]

// Plus concatenates both lists into a new slice, receiver first.
func (e Errors) Plus(other Errors) Errors {
	out := make(Errors, 0, len(e)+len(other))
	out = append(out, e...)
	return append(out, other...)
}

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

func Success[T any](v T) MsgResult[T] {
	return Ok[T, Errors](v)
}

func Failure[T any](msgs ...string) MsgResult[T] {
	return Fail[T](Errors(append([]string{}, msgs...)))
}

// FailSeq collects msgs into a failure.
func FailSeq[T any](msgs iter.Seq[string]) MsgResult[T] {
	Require("FailSeq", "msgs", msgs)

	errs := Errors{}
	for m := range msgs {
		errs = append(errs, m)
	}
	return Fail[T](errs)
}

// FromError turns err into a failure with one message per joined error.
// A nil err still produces a failure, with no messages.
func FromError[T any](err error) MsgResult[T] {
	return Fail[T](ErrorsOf(err))
}

func ErrorsOf(err error) Errors {
	errs := GetErrors(err)
	out := make(Errors, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

// GetErrors flattens an errors.Join result into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
