package outcome

import "context"

// AsyncOutcome is a deferred computation that resolves to a single
// Outcome. It adds no scheduling of its own; it is the channel shape
// used to move an outcome across an asynchronous boundary.
type AsyncOutcome[T, E any] <-chan Outcome[T, E]

// Go runs fn in its own goroutine and returns the deferred outcome.
// The channel is buffered, so fn never blocks on delivery.
func Go[T, E any](fn func() Outcome[T, E]) AsyncOutcome[T, E] {
	ch := make(chan Outcome[T, E], 1)
	go func() {
		ch <- fn()
	}()
	return ch
}

// Resolved returns an already resolved AsyncOutcome.
func Resolved[T, E any](o Outcome[T, E]) AsyncOutcome[T, E] {
	ch := make(chan Outcome[T, E], 1)
	ch <- o
	return ch
}

// Await blocks until a resolves or ctx is done. A context error is
// reported beside the outcome, never folded into E; the returned
// outcome is only meaningful when the error is nil.
func Await[T, E any](ctx context.Context, a AsyncOutcome[T, E]) (Outcome[T, E], error) {
	select {
	case o := <-a:
		return o, nil
	case <-ctx.Done():
		var zero Outcome[T, E]
		return zero, ctx.Err()
	}
}
