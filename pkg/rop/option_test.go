package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_SomeAndNone(t *testing.T) {
	t.Parallel()

	s := Some("v")
	assert.True(t, s.IsSome())
	assert.False(t, s.IsNone())
	v, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	n := None[string]()
	assert.True(t, n.IsNone())
	assert.Equal(t, Option[string]{}, n)
}

func TestOption_Constructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(2), OptionOf(2, true))
	assert.Equal(t, None[int](), OptionOf(2, false))

	x := 7
	assert.Equal(t, Some(7), FromPtr(&x))
	assert.Equal(t, None[int](), FromPtr[int](nil))
}

func TestOption_Or(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Some(1).Or(9))
	assert.Equal(t, 9, None[int]().Or(9))

	called := false
	assert.Equal(t, 1, Some(1).OrElse(func() int { called = true; return 9 }))
	assert.False(t, called)
	assert.Equal(t, 9, None[int]().OrElse(func() int { return 9 }))

	assert.Equal(t, Some(1), Some(1).OrOption(Some(2)))
	assert.Equal(t, Some(2), None[int]().OrOption(Some(2)))
	assert.Equal(t, Some(3), None[int]().OrElseOption(func() Option[int] { return Some(3) }))
}

func TestOption_SwitchAndTee(t *testing.T) {
	t.Parallel()

	var got []string
	Some("a").Switch(func(v string) { got = append(got, v) }, func() { got = append(got, "none") })
	None[string]().Switch(func(v string) { got = append(got, v) }, func() { got = append(got, "none") })
	assert.Equal(t, []string{"a", "none"}, got)

	calls := 0
	assert.Equal(t, Some(4), Some(4).Tee(func(int) { calls++ }))
	assert.Equal(t, None[int](), None[int]().Tee(func(int) { calls++ }))
	assert.Equal(t, 1, calls)
}

func TestOption_NilArgumentsPanicOnBothBranches(t *testing.T) {
	t.Parallel()

	for _, o := range []Option[int]{Some(1), None[int]()} {
		requireNilArgument(t, "onSome", func() { o.Switch(nil, func() {}) })
		requireNilArgument(t, "onNone", func() { o.Switch(func(int) {}, nil) })
		requireNilArgument(t, "action", func() { o.Tee(nil) })
		requireNilArgument(t, "other", func() { o.OrElse(nil) })
		requireNilArgument(t, "other", func() { o.OrElseOption(nil) })
	}
}

func TestOption_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(3)", Some(3).String())
	assert.Equal(t, "None", None[int]().String())
}
