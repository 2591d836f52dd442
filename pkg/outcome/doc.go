// Package outcome provides a generic two-variant result type for
// fallible operations: a Success holding a value of type T or a
// Failure holding an error of type E. Outcomes are immutable values
// constructed only through Success and Failure; every transformation
// returns a new outcome and the first failure short-circuits a chain.
//
// Highlights:
// - Success/Failure: construct an Outcome[T, E]
// - IsSuccess/IsFailure: discriminants for branching
// - Unwrap/UnwrapErr: direct access, panicking on the wrong variant
// - UnwrapOr/UnwrapOrElse: non-panicking access with a fallback
// - Map/MapErr/AndThen: transform and sequence outcomes
// - Contains/ContainsErr: equality checks against a held payload
// - From: bridge from the conventional (value, error) pair
// - AsyncOutcome/Go/Await: move an outcome across a goroutine boundary
//
// For fluent synchronous chaining see the chain subpackage.
package outcome
