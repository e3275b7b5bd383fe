package solo

import (
	"strings"
	"testing"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/future"
	"github.com/stretchr/testify/require"
)

func concat(left, right string) string {
	return left + right
}

func await[T any](t *testing.T, f *future.Future[T]) T {
	t.Helper()

	v, err := f.Wait()
	require.NoError(t, err)
	return v
}

func requireNilArgument(t *testing.T, param string, fn func()) {
	t.Helper()

	defer func() {
		p := recover()
		require.NotNil(t, p, "expected a panic for nil %s", param)

		err, ok := p.(error)
		require.True(t, ok, "panic value should be an error, got %T", p)
		require.ErrorIs(t, err, rop.ErrNilArgument)
		require.True(t, strings.Contains(err.Error(), `"`+param+`"`), err.Error())
	}()

	fn()
}
