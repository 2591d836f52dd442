package outcome

import "fmt"

// UnwrapFailure is the value panicked by Unwrap on a failure. It keeps
// the held error for diagnostics and is not meant to be recovered as
// control flow.
type UnwrapFailure[E any] struct {
	err E
}

func (u UnwrapFailure[E]) Error() string {
	return fmt.Sprintf("outcome: Unwrap called on failure: %v", u.err)
}

// Cause returns the error held by the failure that was unwrapped.
func (u UnwrapFailure[E]) Cause() E {
	return u.err
}

// UnwrapSuccess is the value panicked by UnwrapErr on a success.
type UnwrapSuccess[T any] struct {
	value T
}

func (u UnwrapSuccess[T]) Error() string {
	return fmt.Sprintf("outcome: UnwrapErr called on success: %v", u.value)
}

// Value returns the value held by the success that was unwrapped.
func (u UnwrapSuccess[T]) Value() T {
	return u.value
}
