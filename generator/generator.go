// Package generator produces puzzles with a unique solution. It fills
// an empty board by randomized sequential backtracking, then removes
// clues one cell at a time, keeping a removal only while the puzzle
// still has exactly one completion.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/pflow-xyz/go-sudoku/board"
)

// ErrTargetUnreachable is returned when clue removal cannot reach the
// requested count without losing solution uniqueness.
var ErrTargetUnreachable = errors.New("cannot reach target clue count with a unique solution")

// Generator creates puzzles of one dimension with a seeded source so
// runs are reproducible.
type Generator struct {
	dim int
	rng *rand.Rand
}

// New creates a generator for dim x dim puzzles. dim must be a
// positive perfect square.
func New(dim int, seed int64) (*Generator, error) {
	if _, err := board.NewEmpty(dim); err != nil {
		return nil, err
	}
	return &Generator{dim: dim, rng: rand.New(rand.NewSource(seed))}, nil
}

// Generate produces a puzzle with the given number of clues and a
// unique solution, plus the full solution it was carved from. When the
// clue target cannot be reached it returns the sparsest unique puzzle
// found together with ErrTargetUnreachable.
func (g *Generator) Generate(ctx context.Context, clues int) (puzzle, solution *board.Board, err error) {
	total := g.dim * g.dim
	if clues < 0 || clues > total {
		return nil, nil, fmt.Errorf("clue count %d out of range [0, %d]", clues, total)
	}

	full, err := g.fill(ctx)
	if err != nil {
		return nil, nil, err
	}

	work := full.Clone()
	remaining := total

	positions := g.rng.Perm(total)
	for _, pos := range positions {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if remaining <= clues {
			break
		}
		x, y := pos%g.dim, pos/g.dim
		old, err := work.Get(x, y)
		if err != nil {
			return nil, nil, err
		}
		if old == board.Empty {
			continue
		}
		if err := work.Set(x, y, board.Empty); err != nil {
			return nil, nil, err
		}
		n, err := CountSolutions(ctx, work, 2)
		if err != nil {
			return nil, nil, err
		}
		if n != 1 {
			// Removal breaks uniqueness; put the clue back.
			if err := work.Set(x, y, old); err != nil {
				return nil, nil, err
			}
			continue
		}
		remaining--
	}

	if remaining > clues {
		return work, full, fmt.Errorf("%w: stopped at %d clues (target %d)",
			ErrTargetUnreachable, remaining, clues)
	}
	return work, full, nil
}

// fill completes an empty board with a random valid grid.
func (g *Generator) fill(ctx context.Context) (*board.Board, error) {
	b, err := board.NewEmpty(g.dim)
	if err != nil {
		return nil, err
	}

	values := make([]int, g.dim)
	for i := range values {
		values[i] = i + 1
	}

	var dfs func(x, y int) (bool, error)
	dfs = func(x, y int) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if x >= g.dim {
			x = 0
			y++
			if y >= g.dim {
				return true, nil
			}
		}
		g.rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		order := make([]int, len(values))
		copy(order, values)
		for _, v := range order {
			ok, err := b.IsCandidate(x, y, v)
			if err != nil {
				return false, err
			}
			if !ok {
				continue
			}
			if err := b.Set(x, y, v); err != nil {
				return false, err
			}
			done, err := dfs(x+1, y)
			if err != nil {
				return false, err
			}
			if done {
				return true, nil
			}
			if err := b.Set(x, y, board.Empty); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	done, err := dfs(0, 0)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, fmt.Errorf("could not fill %dx%d board", g.dim, g.dim)
	}
	return b, nil
}

// CountSolutions counts completions of b, stopping once limit is
// reached. It runs sequentially on a working copy; use limit 2 to
// test solution uniqueness.
func CountSolutions(ctx context.Context, b *board.Board, limit int) (int, error) {
	if conflicts := b.Validate(); len(conflicts) > 0 {
		return 0, nil
	}

	work := b.Clone()
	dim := work.Dim()
	count := 0

	var dfs func(x, y int) error
	dfs = func(x, y int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if count >= limit {
			return nil
		}
		if x >= dim {
			x = 0
			y++
			if y >= dim {
				count++
				return nil
			}
		}
		v, err := work.Get(x, y)
		if err != nil {
			return err
		}
		if v != board.Empty {
			return dfs(x+1, y)
		}
		for c := 1; c <= dim; c++ {
			ok, err := work.IsCandidate(x, y, c)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := work.Set(x, y, c); err != nil {
				return err
			}
			if err := dfs(x+1, y); err != nil {
				return err
			}
			if err := work.Set(x, y, board.Empty); err != nil {
				return err
			}
			if count >= limit {
				return nil
			}
		}
		return nil
	}

	if err := dfs(0, 0); err != nil {
		return 0, err
	}
	return count, nil
}
