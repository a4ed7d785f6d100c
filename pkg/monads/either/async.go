package either

import (
	"context"
	"errors"
)

// ErrNoResult is returned by Await when a stage finished without a value.
var ErrNoResult = errors.New("either: stage finished without a result")

// Go runs f in its own goroutine and returns a channel that yields its
// result once. If ctx is done before f is started, the channel is closed
// without a value.
func Go[S, F any](ctx context.Context, f func(ctx context.Context) Either[S, F]) <-chan Either[S, F] {
	out := make(chan Either[S, F], 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}
		out <- f(ctx)
	}()

	return out
}

// Await blocks until ch yields a value, ch is closed or ctx is done.
func Await[S, F any](ctx context.Context, ch <-chan Either[S, F]) (Either[S, F], error) {
	select {
	case e, ok := <-ch:
		if !ok {
			return Either[S, F]{}, ErrNoResult
		}
		return e, nil
	case <-ctx.Done():
		return Either[S, F]{}, ctx.Err()
	}
}

// ChainAsync waits for upstream and, when it is a success, starts onRight
// once and forwards its result. A failure is forwarded with the same failure
// value and onRight is never started. When ctx is done, or a stage ends
// without a value, the returned channel is closed empty.
func ChainAsync[S, T, F any](ctx context.Context, upstream <-chan Either[S, F],
	onRight func(ctx context.Context, r S) <-chan Either[T, F]) <-chan Either[T, F] {

	out := make(chan Either[T, F], 1)

	go func() {
		defer close(out)

		in, err := Await(ctx, upstream)
		if err != nil {
			return
		}

		if !in.isRight {
			out <- Left[T](in.left)
			return
		}

		if ctx.Err() != nil {
			return
		}

		next, err := Await(ctx, onRight(ctx, in.right))
		if err != nil {
			return
		}
		out <- next
	}()

	return out
}

// ChainAfter is ChainAsync with a synchronous next stage.
func ChainAfter[S, T, F any](ctx context.Context, upstream <-chan Either[S, F],
	onRight func(r S) Either[T, F]) <-chan Either[T, F] {

	return ChainAsync(ctx, upstream, func(_ context.Context, r S) <-chan Either[T, F] {
		return Ready(onRight(r))
	})
}

// Ready returns a channel already holding e.
func Ready[S, F any](e Either[S, F]) <-chan Either[S, F] {
	out := make(chan Either[S, F], 1)
	out <- e
	close(out)
	return out
}
