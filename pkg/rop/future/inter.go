package future

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/railway/pkg/rop"
)

// Awaitable is any deferred computation the algebra can consume.
type Awaitable[T any] interface {
	// Await blocks until the value is available or ctx is done
	Await(ctx context.Context) (T, error)
	// ID identifies the computation
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var _ Awaitable[struct{}] = (*Future[struct{}])(nil)

// From adopts a in a Future. A *Future is returned as is.
func From[T any](a Awaitable[T]) *Future[T] {
	rop.Require("From", "a", a)

	if f, ok := a.(*Future[T]); ok {
		return f
	}

	f := newFuture[T]()
	f.id = a.ID()
	f.createdAt = a.CreatedAt()
	go f.resolve(func() (T, error) {
		return a.Await(context.Background())
	})
	return f
}
