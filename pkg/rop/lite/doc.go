// Package lite lifts the solo and maybe primitives over future.Future: each
// function takes a deferred result or option and returns a deferred outcome
// with exactly the branch and merge decisions of the immediate form.
//
// Everything is built from Lift (immediate function) and LiftAsync (deferred
// function). Nil-argument checks run before lifting, so misuse panics at the
// call site rather than inside a goroutine.
//
// Common usage:
// - Bind/Map/Map2/MapError/Tee/TeeError/Flatten: deferred result, plain function
// - BindAsync/MapAsync/...: deferred result, deferred function
// - Plus/PlusWith/Sum/Fold/Unroll: deferred operands, awaited left to right
// - *Option: the same for rop.Option
package lite
