package lite

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
)

// Lift applies a synchronous combinator once src resolves.
func Lift[S, R any](src *future.Future[S], op func(S) R) *future.Future[R] {
	rop.Require("Lift", "src", src)
	rop.Require("Lift", "op", op)

	return future.Then(src, op)
}

// LiftAsync applies a combinator that itself returns a future.
func LiftAsync[S, R any](src *future.Future[S], op func(S) *future.Future[R]) *future.Future[R] {
	rop.Require("LiftAsync", "src", src)
	rop.Require("LiftAsync", "op", op)

	return future.Bind(src, op)
}
