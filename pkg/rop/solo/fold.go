package solo

import (
	"iter"

	"github.com/ib-77/railway/pkg/rop"
)

// FoldFrom adds every value into seed with PlusWith. Failures are never
// skipped: all errors of the sequence end up merged, in order.
func FoldFrom[Acc, T, E any](values iter.Seq[rop.Result[T, E]], seed rop.Result[Acc, E],
	aggregate func(acc Acc, v T) Acc,
	merge func(left, right E) E) rop.Result[Acc, E] {

	rop.Require("FoldFrom", "values", values)
	rop.Require("FoldFrom", "aggregate", aggregate)
	rop.Require("FoldFrom", "merge", merge)

	acc := seed
	for v := range values {
		acc = PlusWith(acc, v, aggregate, merge)
	}
	return acc
}

func Fold[Acc, T, E any](values iter.Seq[rop.Result[T, E]], seed Acc,
	aggregate func(acc Acc, v T) Acc,
	merge func(left, right E) E) rop.Result[Acc, E] {

	rop.Require("Fold", "values", values)
	rop.Require("Fold", "aggregate", aggregate)
	rop.Require("Fold", "merge", merge)

	return FoldFrom(values, rop.Ok[Acc, E](seed), aggregate, merge)
}

func FoldMerged[Acc, T any, E rop.Combinable[E]](values iter.Seq[rop.Result[T, E]], seed Acc,
	aggregate func(acc Acc, v T) Acc) rop.Result[Acc, E] {
	return Fold(values, seed, aggregate, rop.Merge[E])
}

// Reduce folds values without a seed: the first result is the starting
// accumulator. An empty sequence gives None.
func Reduce[T, E any](values iter.Seq[rop.Result[T, E]],
	combine func(left, right T) T,
	merge func(left, right E) E) rop.Option[rop.Result[T, E]] {

	rop.Require("Reduce", "values", values)
	rop.Require("Reduce", "combine", combine)
	rop.Require("Reduce", "merge", merge)

	var acc rop.Result[T, E]
	started := false
	for v := range values {
		if !started {
			acc, started = v, true
			continue
		}
		acc = PlusWith(acc, v, combine, merge)
	}
	return rop.OptionOf(acc, started)
}

func ReduceSum[T rop.Combinable[T], E rop.Combinable[E]](values iter.Seq[rop.Result[T, E]]) rop.Option[rop.Result[T, E]] {
	return Reduce(values, rop.Merge[T], rop.Merge[E])
}

// Unroll collects every success in order, or merges every error in order.
func Unroll[T, E any](values iter.Seq[rop.Result[T, E]],
	merge func(left, right E) E) rop.Result[[]T, E] {

	rop.Require("Unroll", "values", values)
	rop.Require("Unroll", "merge", merge)

	return Fold(values, []T{}, func(acc []T, v T) []T {
		return append(acc, v)
	}, merge)
}

func UnrollMerged[T any, E rop.Combinable[E]](values iter.Seq[rop.Result[T, E]]) rop.Result[[]T, E] {
	return Unroll(values, rop.Merge[E])
}
