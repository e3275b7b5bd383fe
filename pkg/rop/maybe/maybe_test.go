package maybe

import (
	"strconv"
	"testing"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positive(v int) rop.Option[int] {
	return rop.OptionOf(v, v > 0)
}

func await[T any](t *testing.T, f *future.Future[T]) T {
	t.Helper()

	v, err := f.Wait()
	require.NoError(t, err)
	return v
}

func TestMatch(t *testing.T) {
	t.Parallel()

	onSome := func(v int) string { return strconv.Itoa(v) }
	onNone := func() string { return "none" }

	assert.Equal(t, "2", Match(rop.Some(2), onSome, onNone))
	assert.Equal(t, "none", Match(rop.None[int](), onSome, onNone))
}

func TestBind_Laws(t *testing.T) {
	t.Parallel()

	assert.Equal(t, positive(3), Bind(rop.Some(3), positive))
	assert.Equal(t, positive(-1), Bind(rop.Some(-1), positive))
	assert.Equal(t, rop.None[int](), Bind(rop.None[int](), positive))

	for _, o := range []rop.Option[int]{rop.Some(1), rop.None[int]()} {
		assert.Equal(t, o, Bind(o, rop.Some[int]))
	}
}

func TestMapAndFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Some("4"), Map(rop.Some(4), strconv.Itoa))
	assert.Equal(t, rop.None[string](), Map(rop.None[int](), strconv.Itoa))

	assert.Equal(t, rop.Some(1), Flatten(rop.Some(rop.Some(1))))
	assert.Equal(t, rop.None[int](), Flatten(rop.Some(rop.None[int]())))
	assert.Equal(t, rop.None[int](), Flatten(rop.None[rop.Option[int]]()))
}

func TestFold(t *testing.T) {
	t.Parallel()

	add := func(acc, v int) int { return acc + v }
	assert.Equal(t, 15, Fold(rop.Some(5), 10, add))
	assert.Equal(t, 10, Fold(rop.None[int](), 10, add))
}

func TestFoldUntil(t *testing.T) {
	t.Parallel()

	step := func(acc, v int) rop.Option[int] { return positive(acc + v) }

	assert.Equal(t, rop.Some(3), FoldUntil(rop.Some(1), 2, step))
	assert.Equal(t, rop.None[int](), FoldUntil(rop.Some(-5), 2, step))
	assert.Equal(t, rop.Some(2), FoldUntil(rop.None[int](), 2, step))
}

func TestResultConversions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Ok[int, string](1), ToResult(rop.Some(1), "missing"))
	assert.Equal(t, rop.Fail[int]("missing"), ToResult(rop.None[int](), "missing"))

	assert.Equal(t, rop.Some(1), FromResult(rop.Ok[int, string](1)))
	assert.Equal(t, rop.None[int](), FromResult(rop.Fail[int]("e")))
}

func TestAsync_MatchesImmediateForm(t *testing.T) {
	t.Parallel()

	positiveAsync := func(v int) *future.Future[rop.Option[int]] {
		return future.Async(func() rop.Option[int] { return positive(v) })
	}
	add := func(acc, v int) int { return acc + v }
	addAsync := func(acc, v int) *future.Future[int] { return future.Resolved(acc + v) }

	for _, o := range []rop.Option[int]{rop.Some(3), rop.Some(-3), rop.None[int]()} {
		assert.Equal(t, Bind(o, positive), await(t, BindAsync(o, positiveAsync)))
		assert.Equal(t, Fold(o, 1, add), await(t, FoldAsync(o, 1, addAsync)))
		assert.Equal(t,
			FoldUntil(o, 1, func(acc, v int) rop.Option[int] { return positive(acc + v) }),
			await(t, FoldUntilAsync(o, 1, func(acc, v int) *future.Future[rop.Option[int]] {
				return future.Resolved(positive(acc + v))
			})))
	}
}

func TestMapAsyncAndTeeAsync(t *testing.T) {
	t.Parallel()

	itoa := func(v int) *future.Future[string] { return future.Resolved(strconv.Itoa(v)) }
	assert.Equal(t, rop.Some("8"), await(t, MapAsync(rop.Some(8), itoa)))
	assert.Equal(t, rop.None[string](), await(t, MapAsync(rop.None[int](), itoa)))

	seen := make(chan int, 1)
	out := await(t, TeeAsync(rop.Some(6), func(v int) *future.Future[rop.Unit] {
		return future.Async(func() rop.Unit { seen <- v; return rop.Unit{} })
	}))
	assert.Equal(t, rop.Some(6), out)
	assert.Equal(t, 6, <-seen)
}

func TestOrAsync(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, await(t, OrAsync(rop.Some(1), future.Resolved(9))))
	assert.Equal(t, 9, await(t, OrAsync(rop.None[int](), future.Resolved(9))))

	called := false
	assert.Equal(t, 1, await(t, OrElseAsync(rop.Some(1), func() *future.Future[int] {
		called = true
		return future.Resolved(9)
	})))
	assert.False(t, called)
}

func TestOrOptionAsync(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Some(1), await(t, OrOptionAsync(rop.Some(1), future.Resolved(rop.Some(9)))))
	assert.Equal(t, rop.Some(9), await(t, OrOptionAsync(rop.None[int](), future.Resolved(rop.Some(9)))))
	assert.Equal(t, rop.None[int](), await(t, OrOptionAsync(rop.None[int](), future.Resolved(rop.None[int]()))))

	called := false
	out := OrElseOptionAsync(rop.Some(1), func() *future.Future[rop.Option[int]] {
		called = true
		return future.Resolved(rop.None[int]())
	})
	assert.Equal(t, rop.Some(1), await(t, out))
	assert.False(t, called)
}

func TestUnwrapAndSomeAsync(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Some(2), await(t, UnwrapAsync(rop.Some(future.Resolved(2)))))
	assert.Equal(t, rop.None[int](), await(t, UnwrapAsync(rop.None[*future.Future[int]]())))
	assert.Equal(t, rop.Some("x"), await(t, SomeAsync(future.Resolved("x"))))
}

func TestNilArguments_PanicOnBothBranches(t *testing.T) {
	t.Parallel()

	for _, o := range []rop.Option[int]{rop.Some(1), rop.None[int]()} {
		assertNilArgument(t, func() { Match(o, nil, func() int { return 0 }) })
		assertNilArgument(t, func() { Match(o, func(int) int { return 0 }, nil) })
		assertNilArgument(t, func() { Bind[int, int](o, nil) })
		assertNilArgument(t, func() { Map[int, int](o, nil) })
		assertNilArgument(t, func() { Fold[int, int](o, 0, nil) })
		assertNilArgument(t, func() { BindAsync[int, int](o, nil) })
		assertNilArgument(t, func() { OrAsync(o, nil) })
	}
}

func assertNilArgument(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok, "expected an error panic")
		assert.ErrorIs(t, err, rop.ErrNilArgument)
	}()

	fn()
}
