package solo

import (
	"context"

	"github.com/ib-77/sig2gmt/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

// Guard cancels a successful input when ctx is already done.
func Guard[T any](ctx context.Context, input rop.Result[T]) rop.Result[T] {
	if input.IsSuccess() && ctx.Err() != nil {
		return rop.Cancel[T](ctx.Err()).At(input.Stage())
	}
	return input
}

// Validate fails the input when check returns an error.
func Validate[T any](ctx context.Context, input rop.Result[T],
	check func(ctx context.Context, in T) error) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}
	if err := check(ctx, input.Result()); err != nil {
		return rop.FromError[T](err)
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.Carry[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.Carry[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Carry[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.Result())
	if err != nil {
		return rop.FromError[Out](err)
	}
	return rop.Success(out)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		if onSuccess != nil {
			onSuccess(ctx, input.Result())
		}
	case input.IsCancel():
		if onCancel != nil {
			onCancel(ctx, input.Err())
		}
	default:
		if onError != nil {
			onError(ctx, input.Err())
		}
	}
	return input
}

// Each runs step over items in order and stops at the first result that is
// not a success. The returned slice holds the values of every successful step.
func Each[In any, Out any](ctx context.Context, items []In,
	step func(ctx context.Context, item In) rop.Result[Out]) rop.Result[[]Out] {

	outs := make([]Out, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return rop.Cancel[[]Out](err)
		}

		res := step(ctx, item)
		if !res.IsSuccess() {
			return rop.Carry[Out, []Out](res)
		}
		outs = append(outs, res.Result())
	}
	return rop.Success(outs)
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	}
	return onError(ctx, input.Err())
}
