package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is the value travelling along the conversion railway. A result is
// either a success carrying a value, a failure carrying an error, or a cancel
// carrying the context error that stopped the run. Stage names the pipeline
// step that produced it.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	stage     string
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		isCancel:  true,
	}
}

// FromError picks the failure or cancel branch depending on err.
func FromError[T any](err error) Result[T] {
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

// Carry moves a non-successful result onto another value type, keeping its
// id, timestamp, stage and error.
func Carry[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		stage:     from.stage,
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
	}
}

// At labels the result with the stage that produced it.
func (r Result[T]) At(stage string) Result[T] {
	r.stage = stage
	return r
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Stage() string {
	return r.stage
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

// IsFailure reports a failed result; cancelled results are not failures.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel && r.err != nil
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
