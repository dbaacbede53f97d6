package rop

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestResultBranches(t *testing.T) {
	t.Parallel()

	ok := Success(1)
	if !ok.IsSuccess() || ok.IsFailure() || ok.IsCancel() || ok.IsEmpty() {
		t.Fatalf("unexpected success flags")
	}

	failed := Fail[int](errors.New("x"))
	if failed.IsSuccess() || !failed.IsFailure() || failed.IsCancel() {
		t.Fatalf("unexpected failure flags")
	}

	cancelled := Cancel[int](context.Canceled)
	if cancelled.IsSuccess() || cancelled.IsFailure() || !cancelled.IsCancel() {
		t.Fatalf("unexpected cancel flags")
	}

	var empty Result[int]
	if !empty.IsEmpty() {
		t.Fatalf("zero result must be empty")
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	if !FromError[int](fmt.Errorf("wrap: %w", context.DeadlineExceeded)).IsCancel() {
		t.Fatalf("deadline must map to cancel")
	}
	if !FromError[int](errors.New("io")).IsFailure() {
		t.Fatalf("plain error must map to failure")
	}
}

func TestCarryKeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Fail[int](errors.New("x")).At("write")
	out := Carry[int, string](in)

	if out.Id() != in.Id() || out.Stage() != "write" || out.Err() != in.Err() || !out.CreatedAt().Equal(in.CreatedAt()) {
		t.Fatalf("carry lost identity")
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	if len(GetErrors(nil)) != 0 {
		t.Fatalf("nil must flatten to nothing")
	}
	joined := errors.Join(errors.New("a"), errors.New("b"))
	if len(GetErrors(joined)) != 2 {
		t.Fatalf("expected 2 errors")
	}
	if len(GetErrors(errors.New("a"))) != 1 {
		t.Fatalf("expected 1 error")
	}
}
