package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

type Chain[T, E any] struct {
	ctx context.Context
	res outcome.Outcome[T, E]
}

func Start[T, E any](ctx context.Context, r outcome.Outcome[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, outcome.Success[T, E](v))
}

func (c Chain[T, E]) Outcome() outcome.Outcome[T, E] {
	return c.res
}

// Then composes functions that already return an outcome of the same type
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: outcome.Success[T, E](onSuccess(c.ctx, c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

func (c Chain[T, E]) UnwrapOr(defaultValue T) T {
	return c.res.UnwrapOr(defaultValue)
}

// Then chains a function that switches to an outcome of a new value type
func Then[T, U, E any](c Chain[T, E], onSuccess func(context.Context, T) outcome.Outcome[U, E]) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: outcome.AndThen(c.res, func(t T) outcome.Outcome[U, E] {
			return onSuccess(c.ctx, t)
		}),
	}
}

// Map chains a pure transformation to a new value type
func Map[T, U, E any](c Chain[T, E], onSuccess func(context.Context, T) U) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: outcome.Map(c.res, func(t T) U {
			return onSuccess(c.ctx, t)
		}),
	}
}

// ThenTry chains a function that returns (U, error), like repo calls
func ThenTry[T, U any](c Chain[T, error], try func(context.Context, T) (U, error)) Chain[U, error] {
	return Chain[U, error]{
		ctx: c.ctx,
		res: outcome.AndThen(c.res, func(t T) outcome.Outcome[U, error] {
			return outcome.From(try(c.ctx, t))
		}),
	}
}

// Finally collapses the chain to a final value
func Finally[T, U, E any](c Chain[T, E],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U) U {

	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onFailure(c.ctx, c.res.Err())
}
