package hashing

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"
)

// Observer receives a callback for every operation run on a [Pool].
// Implementations must be safe for concurrent use.
type Observer interface {
	// Started is called once a worker slot has been acquired.
	Started(op string)
	// Finished is called when the operation returns, even if the waiting
	// caller has already given up.
	Finished(op string, elapsed time.Duration, err error)
}

// Pool runs bcrypt operations on background goroutines, bounded by a
// weighted semaphore.
//
// # Cancellation
//
// Cancellation is best-effort. If ctx is done before a slot is free the
// operation never starts. Once bcrypt has started it runs to completion;
// a caller whose ctx ends first gets ctx.Err() and the result is discarded.
//
// A Pool is safe for concurrent use and may be shared by several engines.
type Pool struct {
	sem      *semaphore.Weighted
	size     int64
	observer Observer
}

// NewPool creates a Pool admitting at most size concurrent operations.
// A size ≤ 0 selects runtime.GOMAXPROCS(0), since bcrypt is CPU-bound.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: int64(size),
	}
}

// WithObserver returns a copy of p that shares p's capacity and reports to o.
func (p *Pool) WithObserver(o Observer) *Pool {
	cp := *p
	cp.observer = o
	return &cp
}

// Size returns the maximum number of concurrent operations.
func (p *Pool) Size() int { return int(p.size) }

type result[T any] struct {
	val T
	err error
}

// submit runs fn on a pool goroutine and waits for it or for ctx.
func submit[T any](ctx context.Context, p *Pool, op string, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, err
	}

	// buffered so the worker never blocks on an abandoned caller
	done := make(chan result[T], 1)
	go func() {
		defer p.sem.Release(1)
		if p.observer != nil {
			p.observer.Started(op)
		}
		start := time.Now()
		v, err := fn()
		if p.observer != nil {
			p.observer.Finished(op, time.Since(start), err)
		}
		done <- result[T]{val: v, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
