package rop

import "fmt"

// Option is either Some value or None. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf builds an Option from the comma-ok idiom.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) Switch(onSome func(T), onNone func()) {
	Require("Switch", "onSome", onSome)
	Require("Switch", "onNone", onNone)

	if o.some {
		onSome(o.value)
	} else {
		onNone()
	}
}

// Tee runs action on Some and returns o unchanged.
func (o Option[T]) Tee(action func(T)) Option[T] {
	Require("Tee", "action", action)

	if o.some {
		action(o.value)
	}
	return o
}

func (o Option[T]) Or(other T) T {
	if o.some {
		return o.value
	}
	return other
}

func (o Option[T]) OrElse(other func() T) T {
	Require("OrElse", "other", other)

	if o.some {
		return o.value
	}
	return other()
}

func (o Option[T]) OrOption(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

func (o Option[T]) OrElseOption(other func() Option[T]) Option[T] {
	Require("OrElseOption", "other", other)

	if o.some {
		return o
	}
	return other()
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
