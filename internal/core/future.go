package core

import (
	"context"
	"sync"
)

// Future is a Result that settles exactly once. Waiting on it can be
// abandoned through a context, but the work behind it keeps running.
type Future struct {
	once   sync.Once
	done   chan struct{}
	result Result
}

func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Settle stores r and wakes all waiters. Later calls are ignored.
func (f *Future) Settle(r Result) {
	f.once.Do(func() {
		f.result = r
		close(f.done)
	})
}

func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the future settles.
func (f *Future) Result() Result {
	<-f.done
	return f.result
}

func (f *Future) Await(ctx context.Context) (Result, error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
