package rop

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilArgument is matched by every ArgumentError.
var ErrNilArgument = errors.New("rop: nil argument")

// ArgumentError reports a nil function or sequence passed to a combinator.
// It is raised with panic: it marks a defect in the caller and never travels
// on the failure branch of a Result or Option.
type ArgumentError struct {
	Op    string
	Param string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("rop: %s: argument %q must not be nil", e.Op, e.Param)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrNilArgument
}

// Require panics with an *ArgumentError when arg is nil.
func Require(op, param string, arg any) {
	if IsNil(arg) {
		panic(&ArgumentError{Op: op, Param: param})
	}
}

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
