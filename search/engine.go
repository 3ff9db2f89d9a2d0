// Package search implements backtracking Sudoku search with
// depth-bounded task parallelism. The engine walks the grid in
// row-major order, enumerates legal candidate values at each empty
// cell, and explores the resulting sub-boards — concurrently while the
// recursion is shallow, sequentially once it passes the configured
// depth gate. The first complete board discovered by any branch wins.
package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pflow-xyz/go-sudoku/board"
)

// Error types for the search package.
var (
	// ErrUnsolvable is returned when no valid completion of the input
	// board exists. It is an outcome, not a fault: callers distinguish
	// it from construction and coordinate errors with errors.Is.
	ErrUnsolvable = errors.New("no valid completion exists")

	// ErrInvalidDepth is returned when an engine is constructed with a
	// parallelization depth below 1.
	ErrInvalidDepth = errors.New("max parallelization depth must be at least 1")
)

// Engine is a backtracking solver. Branches above maxParallelDepth
// fan out one pool task per candidate value; branches at or below it
// recurse sequentially with short-circuit on the first solution.
//
// Shallow levels of the search tree carry the largest subtrees, so
// that is where a task buys the most parallel work per spawn. Deep
// levels have exponentially more and exponentially cheaper branches;
// tasking them all would drown the pool in bookkeeping.
type Engine struct {
	maxParallelDepth int
	pool             *Pool
}

// New creates an engine. maxParallelDepth must be at least 1; a value
// of 1 disables parallel fan-out entirely. A nil pool gets a default
// pool sized to the machine.
func New(maxParallelDepth int, pool *Pool) (*Engine, error) {
	if maxParallelDepth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, maxParallelDepth)
	}
	if pool == nil {
		pool = NewPool(0)
	}
	return &Engine{maxParallelDepth: maxParallelDepth, pool: pool}, nil
}

// MaxParallelDepth returns the configured depth gate.
func (e *Engine) MaxParallelDepth() int { return e.maxParallelDepth }

// Stats summarizes one Run.
type Stats struct {
	Cells    int64         // cell visits during the search
	Branches int64         // candidate values tried
	Tasks    int64         // parallel tasks submitted to the pool
	Duration time.Duration // wall time of the run
}

// counters accumulate across concurrent branches of one run.
type counters struct {
	cells    atomic.Int64
	branches atomic.Int64
	tasks    atomic.Int64
}

func (c *counters) snapshot(d time.Duration) Stats {
	return Stats{
		Cells:    c.cells.Load(),
		Branches: c.branches.Load(),
		Tasks:    c.tasks.Load(),
		Duration: d,
	}
}

// Run searches for a completion of b and returns an owned solved
// board. The input board is never mutated. When no completion exists —
// including when the givens already conflict — the error is
// ErrUnsolvable. Which of several valid completions is returned is
// unspecified when branches race; the result is always a complete,
// conflict-free board.
func (e *Engine) Run(ctx context.Context, b *board.Board) (*board.Board, Stats, error) {
	start := time.Now()
	ct := &counters{}

	if conflicts := b.Validate(); len(conflicts) > 0 {
		return nil, ct.snapshot(time.Since(start)),
			fmt.Errorf("%w: %d conflicting givens", ErrUnsolvable, len(conflicts))
	}

	solution, err := e.solve(ctx, b, 0, 0, 1, ct)
	stats := ct.snapshot(time.Since(start))
	if err != nil {
		return nil, stats, err
	}
	if solution == nil {
		return nil, stats, ErrUnsolvable
	}
	return solution, stats, nil
}

// solve explores the board from cursor (x, y). A nil board with nil
// error means this branch is exhausted.
func (e *Engine) solve(ctx context.Context, b *board.Board, x, y, depth int, ct *counters) (*board.Board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dim := b.Dim()

	// Normalize the cursor: past the last column, move to the next
	// row; past the last row, every cell is filled and validated.
	if x >= dim {
		x = 0
		y++
		if y >= dim {
			return b.Clone(), nil
		}
	}

	ct.cells.Add(1)

	v, err := b.Get(x, y)
	if err != nil {
		return nil, err
	}
	if v != board.Empty {
		// Filled cells are skipped without consuming a branch point.
		return e.solve(ctx, b, x+1, y, depth, ct)
	}

	if depth < e.maxParallelDepth {
		return e.branchParallel(ctx, b, x, y, depth, ct)
	}
	return e.branchSequential(ctx, b, x, y, depth, ct)
}

// branchParallel fans out one pool task per candidate value. Each task
// works on its own clone and, on success, claims the shared result
// slot under the mutex — check and set as one step, never overwriting
// an earlier claim. All tasks are joined before returning; siblings of
// a winning branch run to completion rather than being cancelled.
func (e *Engine) branchParallel(ctx context.Context, b *board.Board, x, y, depth int, ct *counters) (*board.Board, error) {
	dim := b.Dim()

	var (
		mu       sync.Mutex
		solution *board.Board
		firstErr error
	)
	var wg sync.WaitGroup

	for v := 1; v <= dim; v++ {
		ok, err := b.IsCandidate(x, y, v)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		ct.branches.Add(1)
		ct.tasks.Add(1)

		child := b.Clone()
		if err := child.Set(x, y, v); err != nil {
			return nil, err
		}

		wg.Add(1)
		e.pool.Go(func() {
			defer wg.Done()
			sub, err := e.solve(ctx, child, x+1, y, depth+1, ct)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			if sub != nil && solution == nil {
				solution = sub
			}
		})
	}

	wg.Wait()

	if solution != nil {
		return solution, nil
	}
	return nil, firstErr
}

// branchSequential tries candidate values in ascending order on the
// caller's goroutine, returning the first solution found.
func (e *Engine) branchSequential(ctx context.Context, b *board.Board, x, y, depth int, ct *counters) (*board.Board, error) {
	dim := b.Dim()

	for v := 1; v <= dim; v++ {
		ok, err := b.IsCandidate(x, y, v)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		ct.branches.Add(1)

		child := b.Clone()
		if err := child.Set(x, y, v); err != nil {
			return nil, err
		}
		sub, err := e.solve(ctx, child, x+1, y, depth+1, ct)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			return sub, nil
		}
	}
	return nil, nil
}
