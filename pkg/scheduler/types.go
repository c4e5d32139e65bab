package scheduler

import (
	"context"
)

// Work is a unit of work run by a pool worker. It must honour ctx.
type Work[T any] func(ctx context.Context) (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

// Future is the handle of a submitted work item.
type Future[T any] struct {
	input  chan T
	cancel context.CancelFunc
}

func NewFuture[T any](input chan T, cancel context.CancelFunc) *Future[T] {
	return &Future[T]{
		input:  input,
		cancel: cancel,
	}
}

// C delivers exactly one value once the work returns.
func (f *Future[T]) C() chan T {
	return f.input
}

// Stop cancels the context handed to the work.
func (f *Future[T]) Stop() {
	f.cancel()
}

// Await blocks until the result is delivered or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case v := <-f.input:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
