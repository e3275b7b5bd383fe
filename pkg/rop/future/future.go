package future

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/railway/pkg/rop"
)

// Future is a value that becomes available later. It resolves exactly once,
// either to a value or to a fault.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	value     T
	err       error
}

// PanicError is the fault of a future whose computation panicked.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("future: computation panicked: %v", e.Value)
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

func (f *Future[T]) resolve(fn func() (T, error)) {
	defer close(f.done)
	defer func() {
		if p := recover(); p != nil {
			f.err = &PanicError{Value: p}
		}
	}()

	f.value, f.err = fn()
}

// Go runs fn on a new goroutine.
func Go[T any](fn func() (T, error)) *Future[T] {
	rop.Require("Go", "fn", fn)

	f := newFuture[T]()
	go f.resolve(fn)
	return f
}

// Async runs fn on a new goroutine; fn cannot fault except by panicking.
func Async[T any](fn func() T) *Future[T] {
	rop.Require("Async", "fn", fn)

	return Go(func() (T, error) {
		return fn(), nil
	})
}

func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.value = v
	close(f.done)
	return f
}

func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	f.err = err
	close(f.done)
	return f
}

func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}

// Done is closed once the future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await waits for the future or for ctx, whichever ends first. Giving up on
// ctx leaves the computation running.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("future %s: %w", f.id, ctx.Err())
	}
}

func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// Then maps the value of f. A fault on f skips fn.
func Then[T, R any](f *Future[T], fn func(T) R) *Future[R] {
	rop.Require("Then", "f", f)
	rop.Require("Then", "fn", fn)

	return Go(func() (R, error) {
		v, err := f.Wait()
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(v), nil
	})
}

// Bind chains the future returned by fn after f. A fault on f skips fn.
func Bind[T, R any](f *Future[T], fn func(T) *Future[R]) *Future[R] {
	rop.Require("Bind", "f", f)
	rop.Require("Bind", "fn", fn)

	return Go(func() (R, error) {
		v, err := f.Wait()
		if err != nil {
			var zero R
			return zero, err
		}
		return fn(v).Wait()
	})
}
