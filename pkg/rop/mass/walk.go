package mass

import (
	"fmt"
	"iter"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
)

// foldUntil walks values once. None from step ends the walk with None, an
// error ends it with that error.
func foldUntil[T, R any](values iter.Seq[rop.Option[T]], seed R,
	step func(acc R, v T) (rop.Option[R], error)) (rop.Option[R], error) {

	next, stop := iter.Pull(values)
	defer stop()

	acc := seed
	for {
		o, ok := next()
		if !ok {
			return rop.Some(acc), nil
		}

		v, some := o.Get()
		if !some {
			continue
		}

		r, err := step(acc, v)
		if err != nil {
			return rop.None[R](), err
		}
		if acc, ok = r.Get(); !ok {
			return r, nil
		}
	}
}

// reduceUntil is foldUntil seeded by the first Some of values.
func reduceUntil[T any](values iter.Seq[rop.Option[T]],
	step func(acc, v T) (rop.Option[T], error)) (rop.Option[T], error) {

	next, stop := iter.Pull(values)
	defer stop()

	acc, ok := next()
	if !ok {
		return rop.None[T](), nil
	}

	for {
		o, ok := next()
		if !ok {
			return acc, nil
		}

		v, some := o.Get()
		if !some {
			continue
		}

		a, started := acc.Get()
		if !started {
			acc = o
			continue
		}

		r, err := step(a, v)
		if err != nil {
			return rop.None[T](), err
		}
		if r.IsNone() {
			return r, nil
		}
		acc = r
	}
}

// guarded runs step, turning a panic into an error.
func guarded[T any](step func(acc, v T) (rop.Option[T], error), acc, v T) (out rop.Option[T], err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("mass: step panicked: %v", p)
		}
	}()

	return step(acc, v)
}

// nest marks a faulted walk with an outer None.
func nest[T any](r rop.Option[T], err error) rop.Option[rop.Option[T]] {
	if err != nil {
		return rop.None[rop.Option[T]]()
	}
	return rop.Some(r)
}

func awaitOption[T any](f *future.Future[rop.Option[T]]) (rop.Option[T], error) {
	return f.Wait()
}

func awaitSome[T any](f *future.Future[T]) (rop.Option[T], error) {
	v, err := f.Wait()
	if err != nil {
		return rop.None[T](), err
	}
	return rop.Some(v), nil
}
