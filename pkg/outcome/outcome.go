package outcome

import (
	"time"

	"github.com/google/uuid"
)

type Outcome[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

func Success[T, E any](value T) Outcome[T, E] {
	return Outcome[T, E]{
		value:     value,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{
		err:       err,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// failureFrom carries a failure payload into a new value type,
// keeping the original id and creation time.
func failureFrom[In, Out, E any](from Outcome[In, E]) Outcome[Out, E] {
	return Outcome[Out, E]{
		err:       from.err,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// successFrom carries a success payload into a new error type,
// keeping the original id and creation time.
func successFrom[T, In, Out any](from Outcome[T, In]) Outcome[T, Out] {
	return Outcome[T, Out]{
		value:     from.value,
		ok:        true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (o Outcome[T, E]) Value() T {
	return o.value
}

func (o Outcome[T, E]) Err() E {
	return o.err
}

func (o Outcome[T, E]) IsSuccess() bool {
	return o.ok
}

func (o Outcome[T, E]) IsFailure() bool {
	return !o.ok
}

// Get destructures the outcome in comma-ok style.
func (o Outcome[T, E]) Get() (T, E, bool) {
	return o.value, o.err, o.ok
}

// Unwrap returns the success value. Calling it on a failure is a
// programmer error and panics with UnwrapFailure carrying the held
// error; establish the variant first, or use UnwrapOr/UnwrapOrElse.
func (o Outcome[T, E]) Unwrap() T {
	if !o.ok {
		panic(UnwrapFailure[E]{err: o.err})
	}
	return o.value
}

// UnwrapErr returns the failure error. Calling it on a success panics
// with UnwrapSuccess carrying the held value.
func (o Outcome[T, E]) UnwrapErr() E {
	if o.ok {
		panic(UnwrapSuccess[T]{value: o.value})
	}
	return o.err
}

// UnwrapOr returns the success value or the eagerly supplied default.
func (o Outcome[T, E]) UnwrapOr(defaultValue T) T {
	if !o.ok {
		return defaultValue
	}
	return o.value
}

// UnwrapOrElse returns the success value or derives one from the held
// error. fn is never invoked on a success.
func (o Outcome[T, E]) UnwrapOrElse(fn func(err E) T) T {
	if !o.ok {
		return fn(o.err)
	}
	return o.value
}

func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}
