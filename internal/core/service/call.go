package service

import "context"

// Call is a cancellable one-shot backend call. Once cancelled, a Call always
// reports the context error, even if the underlying request completed late,
// so a torn-down caller never observes a stale result.
type Call[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}
	val    T
	err    error
}

// Go starts fn in its own goroutine and returns its handle.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Call[T] {
	ctx, cancel := context.WithCancel(ctx)
	c := &Call[T]{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer cancel()
		v, err := fn(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			var zero T
			v, err = zero, ctxErr
		}
		c.val, c.err = v, err
		close(c.done)
	}()

	return c
}

// Cancel aborts the call. It is safe to call more than once.
func (c *Call[T]) Cancel() {
	c.cancel()
}

// Done is closed once the result is available.
func (c *Call[T]) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the call finishes and returns its result.
func (c *Call[T]) Wait() (T, error) {
	<-c.done
	return c.val, c.err
}
