// Package maybe is the Option counterpart of solo: Match, Bind, Map, Flatten
// and single-value folds over rop.Option, with deferred-function variants
// (suffix Async).
//
// None short-circuits: functions handed to Bind, Map or Tee are never called
// on None. Reductions over sequences of Options live in package mass.
package maybe
