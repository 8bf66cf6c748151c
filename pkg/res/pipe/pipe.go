package pipe

import (
	"context"

	"github.com/ib-77/outcome/pkg/res"
)

// Chain wraps a res.Result with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	r   res.Result[T]
}

// Start creates a new chain from a res.Result
func Start[T any](ctx context.Context, r res.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, r: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, res.Ok(v))
}

// Result returns the underlying res.Result
func (c Chain[T]) Result() res.Result[T] {
	return c.r
}

// Then composes a continuation that already returns res.Result[T]. On a
// failed chain the continuation is not invoked and the failure flows on.
func (c Chain[T]) Then(onOk func(ctx context.Context, v T) res.Result[T]) Chain[T] {
	if !c.r.IsOk() {
		return c
	}
	return Chain[T]{ctx: c.ctx, r: onOk(c.ctx, c.r.Value())}
}

// Then is the type-changing form of Chain.Then.
func Then[In, Out any](c Chain[In], onOk func(ctx context.Context, v In) res.Result[Out]) Chain[Out] {
	return Chain[Out]{
		ctx: c.ctx,
		r:   res.AndThen(c.r, func(v In) res.Result[Out] { return onOk(c.ctx, v) }),
	}
}

// ThenTry composes a continuation that returns (T, error), like repo calls.
func (c Chain[T]) ThenTry(try func(ctx context.Context, v T) (T, error)) Chain[T] {
	if !c.r.IsOk() {
		return c
	}
	return Chain[T]{ctx: c.ctx, r: res.From(try(c.ctx, c.r.Value()))}
}

// ThenTry is the type-changing form of Chain.ThenTry.
func ThenTry[In, Out any](c Chain[In], try func(ctx context.Context, v In) (Out, error)) Chain[Out] {
	return Chain[Out]{
		ctx: c.ctx,
		r: res.AndThen(c.r, func(v In) res.Result[Out] {
			return res.From(try(c.ctx, v))
		}),
	}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(ctx context.Context, v T) T) Chain[T] {
	if !c.r.IsOk() {
		return c
	}
	return Chain[T]{ctx: c.ctx, r: res.Ok(onOk(c.ctx, c.r.Value()))}
}

// Map is the type-changing form of Chain.Map.
func Map[In, Out any](c Chain[In], onOk func(ctx context.Context, v In) Out) Chain[Out] {
	return Chain[Out]{
		ctx: c.ctx,
		r:   res.Map(c.r, func(v In) Out { return onOk(c.ctx, v) }),
	}
}

// MapErr transforms the failure reason, leaving a successful chain as is.
func (c Chain[T]) MapErr(onErr func(ctx context.Context, err error) error) Chain[T] {
	return Chain[T]{
		ctx: c.ctx,
		r:   c.r.MapErr(func(err error) error { return onErr(c.ctx, err) }),
	}
}

// OrElse recovers a failed chain via a continuation over the reason.
func (c Chain[T]) OrElse(onErr func(ctx context.Context, err error) res.Result[T]) Chain[T] {
	return Chain[T]{
		ctx: c.ctx,
		r:   c.r.OrElse(func(err error) res.Result[T] { return onErr(c.ctx, err) }),
	}
}

// FailOnNil turns a successful nil value into a failure with reason.
func (c Chain[T]) FailOnNil(reason error) Chain[T] {
	return Chain[T]{ctx: c.ctx, r: res.AndFailOnNil(c.r, reason)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	if c.r.IsOk() {
		if onOk != nil {
			onOk(c.ctx, c.r.Value())
		}
		return c
	}
	if onErr != nil {
		onErr(c.ctx, c.r.Err())
	}
	return c
}

// Finally collapses the chain to a final value
func (c Chain[T]) Finally(onOk func(ctx context.Context, v T) T, onErr func(ctx context.Context, err error) T) T {
	return Finally(c, onOk, onErr)
}

// Finally is the type-changing form of Chain.Finally.
func Finally[In, Out any](c Chain[In], onOk func(ctx context.Context, v In) Out, onErr func(ctx context.Context, err error) Out) Out {
	return res.Finally(c.r,
		func(v In) Out { return onOk(c.ctx, v) },
		func(err error) Out { return onErr(c.ctx, err) })
}
