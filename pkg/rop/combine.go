package rop

// Combinable is implemented by types that know how to add two of their values.
type Combinable[T any] interface {
	Plus(other T) T
}

// Merge adapts the Combinable capability to a plain merge function.
func Merge[T Combinable[T]](a, b T) T {
	return a.Plus(b)
}

type Pair[L, R any] struct {
	Left  L
	Right R
}

func PairOf[L, R any](l L, r R) Pair[L, R] {
	return Pair[L, R]{Left: l, Right: r}
}
