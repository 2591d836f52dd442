package outcome

// Map transforms the success value. On failure the error payload is
// carried through untouched and fn is not invoked.
func Map[In, Out, E any](o Outcome[In, E], fn func(in In) Out) Outcome[Out, E] {
	if o.IsFailure() {
		return failureFrom[In, Out](o)
	}
	return Success[Out, E](fn(o.value))
}

// MapErr transforms the failure error. On success the value is carried
// through untouched and fn is not invoked.
func MapErr[T, In, Out any](o Outcome[T, In], fn func(err In) Out) Outcome[T, Out] {
	if o.IsSuccess() {
		return successFrom[T, In, Out](o)
	}
	return Failure[T, Out](fn(o.err))
}

// AndThen sequences a fallible step. On success the result of fn is
// returned as is, so chains do not nest. On failure fn is not invoked
// and the failure short-circuits through.
func AndThen[In, Out, E any](o Outcome[In, E], fn func(in In) Outcome[Out, E]) Outcome[Out, E] {
	if o.IsFailure() {
		return failureFrom[In, Out](o)
	}
	return fn(o.value)
}

// Contains reports whether o is a success holding value.
func Contains[T comparable, E any](o Outcome[T, E], value T) bool {
	return o.ok && o.value == value
}

// ContainsErr reports whether o is a failure holding err.
func ContainsErr[T any, E comparable](o Outcome[T, E], err E) bool {
	return !o.ok && o.err == err
}

// From converts a conventional (value, error) pair into an outcome.
func From[T any](value T, err error) Outcome[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](value)
}

// Deprecated: use the IsSuccess method instead.
func IsSuccessOutcome[T, E any](o Outcome[T, E]) bool {
	return o.IsSuccess()
}

// Deprecated: use the IsFailure method instead.
func IsFailureOutcome[T, E any](o Outcome[T, E]) bool {
	return o.IsFailure()
}
