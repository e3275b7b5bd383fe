// Package future provides the deferred computation the lite, maybe and mass
// packages lift their combinators over.
//
// A Future runs on its own goroutine and resolves once to a value or a fault.
// Faults are out-of-band: a panic in the computation, or an error returned
// by it. Domain failures belong inside the value (rop.Result, rop.Option).
//
//   - Go/Async: start a computation
//   - Resolved/Failed: wrap an already known outcome
//   - Then/Bind: sequence computations, propagating faults
//   - Await/Wait: obtain the outcome
package future
