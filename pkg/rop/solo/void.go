package solo

import (
	"github.com/ib-77/railway/pkg/rop"
)

// ToVoid drops the success value.
func ToVoid[T, E any](input rop.Result[T, E]) rop.VoidResult[E] {
	return Map(input, func(T) rop.Unit { return rop.Unit{} })
}

// MapTo replaces a void success with value.
func MapTo[T, E any](input rop.VoidResult[E], value T) rop.Result[T, E] {
	return Map(input, func(rop.Unit) T { return value })
}

// BindValue chains a value-producing step after a void success.
func BindValue[T, E any](input rop.VoidResult[E],
	onOk func(rop.Unit) rop.Result[T, E]) rop.Result[T, E] {

	rop.Require("BindValue", "onOk", onOk)

	return Bind(input, onOk)
}
