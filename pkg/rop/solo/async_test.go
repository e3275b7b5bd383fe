package solo

import (
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
	"github.com/stretchr/testify/assert"
)

func halfAsync(v int) *future.Future[rop.Result[int, string]] {
	return future.Async(func() rop.Result[int, string] { return half(v) })
}

func TestBindAsync_MatchesImmediateForm(t *testing.T) {
	t.Parallel()

	for _, r := range []rop.Result[int, string]{
		rop.Ok[int, string](4), rop.Ok[int, string](3), rop.Fail[int]("e"),
	} {
		assert.Equal(t, Bind(r, half), await(t, BindAsync(r, halfAsync)))
	}
}

func TestBindAsync_FailureDoesNotStartFunction(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	out := BindAsync(rop.Fail[int]("e"), func(int) *future.Future[rop.Result[int, string]] {
		calls.Add(1)
		return future.Resolved(rop.Ok[int, string](0))
	})

	assert.Equal(t, rop.Fail[int]("e"), await(t, out))
	assert.Zero(t, calls.Load())
}

func TestMapAsync(t *testing.T) {
	t.Parallel()

	itoa := func(v int) *future.Future[string] {
		return future.Async(func() string { return strconv.Itoa(v) })
	}

	assert.Equal(t, rop.Ok[string, string]("5"), await(t, MapAsync(rop.Ok[int, string](5), itoa)))
	assert.Equal(t, rop.Fail[string]("e"), await(t, MapAsync(rop.Fail[int]("e"), itoa)))
}

func TestMap2AsyncAndMapErrorAsync(t *testing.T) {
	t.Parallel()

	length := func(e string) *future.Future[int] { return future.Resolved(len(e)) }
	double := func(v int) *future.Future[int] { return future.Resolved(v * 2) }

	assert.Equal(t, rop.Ok[int, int](4), await(t, Map2Async(rop.Ok[int, string](2), double, length)))
	assert.Equal(t, rop.Fail[int](3), await(t, Map2Async(rop.Fail[int]("abc"), double, length)))
	assert.Equal(t, rop.Fail[int](2), await(t, MapErrorAsync(rop.Fail[int]("ab"), length)))
}

func TestMatchAsync(t *testing.T) {
	t.Parallel()

	onOk := func(v int) *future.Future[string] { return future.Resolved("ok") }
	onFail := func(e string) *future.Future[string] { return future.Resolved("fail") }

	assert.Equal(t, "ok", await(t, MatchAsync(rop.Ok[int, string](1), onOk, onFail)))
	assert.Equal(t, "fail", await(t, MatchAsync(rop.Fail[int]("x"), onOk, onFail)))

	var seen atomic.Value
	await(t, SwitchAsync(rop.Fail[int]("x"),
		func(int) *future.Future[rop.Unit] { return future.Resolved(rop.Unit{}) },
		func(e string) *future.Future[rop.Unit] {
			return future.Async(func() rop.Unit { seen.Store(e); return rop.Unit{} })
		}))
	assert.Equal(t, "x", seen.Load())
}

func TestTeeAsync_WaitsForAction(t *testing.T) {
	t.Parallel()

	var seen atomic.Int64
	action := func(v int) *future.Future[rop.Unit] {
		return future.Async(func() rop.Unit {
			seen.Store(int64(v))
			return rop.Unit{}
		})
	}

	out := await(t, TeeAsync(rop.Ok[int, string](9), action))
	assert.Equal(t, rop.Ok[int, string](9), out)
	assert.Equal(t, int64(9), seen.Load())

	var errs atomic.Int32
	failed := await(t, TeeErrorAsync(rop.Fail[int]("e"), func(string) *future.Future[rop.Unit] {
		errs.Add(1)
		return future.Resolved(rop.Unit{})
	}))
	assert.Equal(t, rop.Fail[int]("e"), failed)
	assert.Equal(t, int32(1), errs.Load())
}

func TestAsync_FaultPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := BindAsync(rop.Ok[int, string](1), func(int) *future.Future[rop.Result[int, string]] {
		return future.Failed[rop.Result[int, string]](boom)
	}).Wait()
	assert.ErrorIs(t, err, boom)

	_, err = MapAsync(rop.Ok[int, string](1), func(int) *future.Future[int] {
		return future.Async(func() int { panic("step") })
	}).Wait()
	var pe *future.PanicError
	assert.ErrorAs(t, err, &pe)
}

func TestPlusAsync_AwaitsRightEvenOnLeftFailure(t *testing.T) {
	t.Parallel()

	var ran atomic.Bool
	right := future.Async(func() rop.Result[int, string] {
		ran.Store(true)
		return rop.Fail[int]("r")
	})

	out := await(t, PlusAsync(rop.Fail[int]("l"), right, concat))
	assert.Equal(t, rop.Fail[rop.Pair[int, int]]("lr"), out)
	assert.True(t, ran.Load())
}

func TestMapToAsync(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Success("v"), await(t, MapToAsync(rop.VoidOk(), future.Resolved("v"))))
	assert.Equal(t, rop.Failure[string]("e"), await(t, MapToAsync(rop.VoidFail("e"), future.Resolved("v"))))
}

func TestUnwrapAsync(t *testing.T) {
	t.Parallel()

	ok := rop.Ok[*future.Future[int], string](future.Resolved(3))
	assert.Equal(t, rop.Ok[int, string](3), await(t, UnwrapAsync(ok)))

	failed := rop.Fail[int](future.Resolved("late"))
	assert.Equal(t, rop.Fail[int]("late"), await(t, UnwrapErrorAsync(failed)))
}

func TestAsync_SkippedBranchIsAlreadyResolved(t *testing.T) {
	t.Parallel()

	itoa := func(v int) *future.Future[string] { return future.Resolved(strconv.Itoa(v)) }
	length := func(e string) *future.Future[int] { return future.Resolved(len(e)) }

	for _, f := range []interface{ Done() <-chan struct{} }{
		MapAsync(rop.Fail[int]("e"), itoa),
		MapErrorAsync(rop.Ok[int, string](1), length),
		BindAsync(rop.Fail[int]("e"), halfAsync),
	} {
		select {
		case <-f.Done():
		default:
			t.Fatal("future for the skipped branch should already be resolved")
		}
	}
}
