// Package chain provides a fluent wrapper around rop.MsgResult
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Bind, Attempt, Map, Tee, PlusMerged and Match
// behind a convenient Chain[T] type that carries a context.Context into every
// step. This enables ergonomic service pipelines without dealing directly
// with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a MsgResult[T] or value
// - Then: switch to a new MsgResult[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - And: pair two chains, gathering the messages of both on failure
// - Or: first successful chain, or every message when all failed
// - RepeatUntil/While: loop a step on the success track
// - Ensure/OnFailure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
