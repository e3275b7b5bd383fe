// Package mass reduces sequences of rop.Option values: Fold, FoldUntil,
// Reduce, ReduceUntil and the fault-tolerant TryReduce/TryReduceUntil, each
// with a variant whose step function is deferred (suffix Async).
//
// Every reduction pulls a single cursor from the sequence and holds it for
// the whole walk; the cursor is released on normal completion, on early
// exit and when a step panics. None elements contribute nothing to the
// accumulator: a None in the input never aborts a reduction, only a None
// returned by an *Until step does.
package mass
