// Package chain provides a fluent wrapper around Outcome[T, E]
// for building synchronous success/failure pipelines.
//
// It keeps the API surface small:
// - Start/FromValue: begin a chain from an Outcome or a value
// - Then/Map: compose or transform within the same value type
// - Then/Map/ThenTry (package level): switch to a new value type
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// The chain carries a context.Context and passes it to every step,
// so steps that call context-aware code compose without closures
// capturing the context themselves.
package chain
