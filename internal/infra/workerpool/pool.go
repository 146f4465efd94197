// Package workerpool bounds how many CPU-heavy jobs run at once.
package workerpool

import (
	"context"
	"runtime"

	"userapi/internal/errors"

	"golang.org/x/sync/semaphore"
)

// Pool admits at most Size jobs concurrently. Callers beyond that wait for a slot
// and give up when their context is done.
type Pool struct {
	sem  *semaphore.Weighted
	size int
}

// New creates a pool with size slots; size <= 0 falls back to GOMAXPROCS.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return p.size
}

// Do runs fn once a slot is free and returns its error.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "waiting for worker slot")
	}
	defer p.sem.Release(1)

	return fn()
}
