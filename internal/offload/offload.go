// Package offload runs blocking calls on their own goroutine so the caller
// can stop waiting when its context ends.
package offload

import (
	"context"

	"github.com/rotisserie/eris"
)

type result[T any] struct {
	val T
	err error
}

// Do runs fn on a new goroutine and waits for it to finish. If ctx is done
// first, Do returns ctx.Err() and fn's eventual result is discarded. A panic
// inside fn is converted into an error.
func Do[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	ch := make(chan result[T], 1)

	go func() {
		var r result[T]
		defer func() {
			if p := recover(); p != nil {
				r.err = eris.Errorf("offload: panic: %v", p)
			}
			ch <- r
		}()
		r.val, r.err = fn()
	}()

	select {
	case r := <-ch:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
