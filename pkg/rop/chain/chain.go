package chain

import (
	"context"

	"github.com/ib-77/sig2gmt/pkg/rop"
	"github.com/ib-77/sig2gmt/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// step runs next only when the chain is still on the success track and the
// context is alive; whatever next produces is labelled with stage.
func step[T, U any](c *Chain[T], stage string, next func(rop.Result[T]) rop.Result[U]) *Chain[U] {
	if !c.result.IsSuccess() {
		return &Chain[U]{ctx: c.ctx, result: rop.Carry[T, U](c.result)}
	}

	in := solo.Guard(c.ctx, c.result)
	if in.IsCancel() {
		return &Chain[U]{ctx: c.ctx, result: rop.Carry[T, U](in.At(stage))}
	}

	return &Chain[U]{ctx: c.ctx, result: next(in).At(stage)}
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], stage string, onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return step(c, stage, func(in rop.Result[T]) rop.Result[U] {
		return solo.Switch(c.ctx, in, onSuccess)
	})
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], stage string, tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return step(c, stage, func(in rop.Result[T]) rop.Result[U] {
		return solo.Try(c.ctx, in, tryOnSuccess)
	})
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], stage string, onSuccess func(context.Context, T) U) *Chain[U] {
	return step(c, stage, func(in rop.Result[T]) rop.Result[U] {
		return solo.Map(c.ctx, in, onSuccess)
	})
}

// Check fails the chain when check returns an error, keeping the value otherwise
func (c *Chain[T]) Check(stage string, check func(context.Context, T) error) *Chain[T] {
	return step(c, stage, func(in rop.Result[T]) rop.Result[T] {
		return solo.Validate(c.ctx, in, check)
	})
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
