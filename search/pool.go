package search

import (
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Pool bounds how many search tasks run concurrently. The engine does
// not own the pool; the caller sizes it once per run (typically to the
// machine's core count) and may share it across engines.
type Pool struct {
	sem     *semaphore.Weighted
	workers int
}

// NewPool creates a pool allowing up to workers concurrent tasks.
// A non-positive worker count defaults to runtime.NumCPU().
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Pool{
		sem:     semaphore.NewWeighted(int64(workers)),
		workers: workers,
	}
}

// Workers returns the configured concurrency bound.
func (p *Pool) Workers() int { return p.workers }

// Go runs fn on its own goroutine when a worker slot is free, and
// inline on the caller's goroutine otherwise. Falling back to inline
// execution keeps a parent that joins its children from deadlocking a
// fully occupied pool, and naturally degrades to sequential search
// under load. fn has completed or been handed off when Go returns.
func (p *Pool) Go(fn func()) {
	if p.sem.TryAcquire(1) {
		go func() {
			defer p.sem.Release(1)
			fn()
		}()
		return
	}
	fn()
}
