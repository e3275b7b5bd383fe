// Package rop defines the containers of the railway: Option, Result,
// VoidResult and the string-message specialization MsgResult.
//
// The containers are immutable values. Combinators live in the sibling
// packages:
//   - solo: Result and VoidResult algebra (bind, map, plus, fold)
//   - maybe: Option algebra
//   - mass: reductions over sequences of Options
//   - lite: the same operations lifted over future.Future values
//   - chain: a fluent wrapper for service code
//
// Passing a nil function to any combinator panics with *ArgumentError.
package rop
