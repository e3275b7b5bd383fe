package chain

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.MsgResult with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.MsgResult[T]
}

// Start creates a new chain from a rop.MsgResult
func Start[T any](ctx context.Context, result rop.MsgResult[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.MsgResult
func (c *Chain[T]) Result() rop.MsgResult[T] {
	return c.result
}

// Then chains a function that returns rop.MsgResult[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.MsgResult[U]) *Chain[U] {
	rop.Require("Then", "onSuccess", onSuccess)

	return &Chain[U]{
		ctx: c.ctx,
		result: solo.Bind(c.result, func(v T) rop.MsgResult[U] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	rop.Require("ThenTry", "tryOnSuccess", tryOnSuccess)

	return &Chain[U]{
		ctx: c.ctx,
		result: solo.Attempt(c.result, func(v T) (U, error) {
			return tryOnSuccess(c.ctx, v)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	rop.Require("Map", "onSuccess", onSuccess)

	return &Chain[U]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// And evaluates other regardless of c and pairs both values, or gathers the
// messages of every failed side.
func And[T, U any](c *Chain[T], other *Chain[U]) *Chain[rop.Pair[T, U]] {
	rop.Require("And", "other", other)

	return &Chain[rop.Pair[T, U]]{
		ctx:    c.ctx,
		result: solo.PlusMerged(c.result, other.result),
	}
}

// RepeatUntil runs step at least once and repeats it until done holds for the
// new value. A failure ends the loop.
func (c *Chain[T]) RepeatUntil(step func(context.Context, T) rop.MsgResult[T],
	done func(context.Context, T) bool) *Chain[T] {

	rop.Require("RepeatUntil", "step", step)
	rop.Require("RepeatUntil", "done", done)

	for {
		c = Then(c, step)

		v, ok := c.result.Get()
		if !ok || done(c.ctx, v) {
			return c
		}
	}
}

// While runs step for as long as cond holds for the current value.
func (c *Chain[T]) While(step func(context.Context, T) rop.MsgResult[T],
	cond func(context.Context, T) bool) *Chain[T] {

	rop.Require("While", "step", step)
	rop.Require("While", "cond", cond)

	for {
		v, ok := c.result.Get()
		if !ok || !cond(c.ctx, v) {
			return c
		}
		c = Then(c, step)
	}
}

// Or returns the first successful chain among c and alternatives. When all of
// them failed, their messages are merged in order.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	for _, alt := range alternatives {
		rop.Require("Or", "alternatives", alt)
	}

	if c.result.IsSuccess() {
		return c
	}

	errs := c.result.Err()
	for _, alt := range alternatives {
		if alt.result.IsSuccess() {
			return alt
		}
		errs = errs.Plus(alt.result.Err())
	}
	return Start(c.ctx, rop.Fail[T](errs))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	rop.Require("Ensure", "onSuccess", onSuccess)

	return &Chain[T]{
		ctx: c.ctx,
		result: c.result.Tee(func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// OnFailure performs a side effect on failure without changing the result
func (c *Chain[T]) OnFailure(onFailure func(context.Context, rop.Errors)) *Chain[T] {
	rop.Require("OnFailure", "onFailure", onFailure)

	return &Chain[T]{
		ctx: c.ctx,
		result: c.result.TeeError(func(errs rop.Errors) {
			onFailure(c.ctx, errs)
		}),
	}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, rop.Errors) U) U {

	rop.Require("Finally", "onSuccess", onSuccess)
	rop.Require("Finally", "onFailure", onFailure)

	return solo.Match(c.result,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(errs rop.Errors) U { return onFailure(c.ctx, errs) })
}
