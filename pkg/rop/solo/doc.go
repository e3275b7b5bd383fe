// Package solo contains the single-value, synchronous railway algebra over
// rop.Result and rop.VoidResult, plus the variants that take a deferred
// function (suffix Async).
//
// Two strategies coexist:
//   - Bind/Map/Flatten short-circuit: the first failure is returned unchanged
//     and later functions never run.
//   - Plus/Fold/Unroll are applicative: every operand is evaluated and
//     failures are merged with the supplied (or rop.Combinable) merge.
//
// Highlights:
// - Match/Map2: reduce or transform both branches
// - Bind/Map/MapError/Flatten: move along the success track
// - Plus/PlusWith/PlusMerged/Sum: combine two independent results
// - Fold/FoldFrom/Reduce/Unroll: combine a sequence of results
// - Try/Attempt: convert (value, error) calls into results
// - ToVoid/MapTo/BindValue: void results
package solo
