package results

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pflow-xyz/go-sudoku/board"
	"github.com/pflow-xyz/go-sudoku/search"
)

// Version tags the sweep result schema.
const Version = "1.0"

// Config describes the parameter grid of a sweep.
type Config struct {
	Workers     []int // pool sizes to try
	Depths      []int // maxParallelDepth values to try
	Repetitions int   // solves per configuration
}

// DefaultConfig sweeps the axes the original measurement setup used:
// worker counts against powers-of-two depth gates.
func DefaultConfig() Config {
	return Config{
		Workers:     []int{1, 2, 4, 8},
		Depths:      []int{1, 2, 4, 8},
		Repetitions: 3,
	}
}

func (c Config) validate() error {
	if len(c.Workers) == 0 || len(c.Depths) == 0 {
		return fmt.Errorf("sweep needs at least one worker count and one depth")
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("sweep needs at least one repetition, got %d", c.Repetitions)
	}
	return nil
}

// Run executes the sweep. Every configuration solves its own copy of
// the puzzle; a configuration that fails (unsolvable input,
// cancellation) is recorded with its error and excluded from ranking.
func Run(ctx context.Context, puzzle *board.Board, name string, cfg Config) (*SweepResults, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	res := &SweepResults{
		Version:     Version,
		Puzzle:      name,
		Dimension:   puzzle.Dim(),
		FreeCells:   puzzle.FreeCells(),
		Workers:     cfg.Workers,
		Depths:      cfg.Depths,
		Repetitions: cfg.Repetitions,
	}

	id := 0
	for _, workers := range cfg.Workers {
		for _, depth := range cfg.Depths {
			id++
			variant := Variant{ID: id, Workers: workers, MaxDepth: depth}

			engine, err := search.New(depth, search.NewPool(workers))
			if err != nil {
				variant.Error = err.Error()
				res.Variants = append(res.Variants, variant)
				continue
			}

			m, err := measure(ctx, engine, puzzle, cfg.Repetitions)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				variant.Error = err.Error()
			} else {
				variant.Metrics = m
				variant.Score = m.MeanDurationMS
			}
			res.Variants = append(res.Variants, variant)
		}
	}

	rank(res)
	return res, nil
}

// measure solves the puzzle n times with the given engine.
func measure(ctx context.Context, engine *search.Engine, puzzle *board.Board, n int) (Metrics, error) {
	m := Metrics{
		MinDurationMS: math.Inf(1),
		Repetitions:   n,
	}

	var totalMS, totalCells, totalBranches, totalTasks float64
	for i := 0; i < n; i++ {
		_, stats, err := engine.Run(ctx, puzzle)
		if err != nil {
			return Metrics{}, err
		}
		ms := float64(stats.Duration) / float64(time.Millisecond)
		totalMS += ms
		totalCells += float64(stats.Cells)
		totalBranches += float64(stats.Branches)
		totalTasks += float64(stats.Tasks)
		if ms < m.MinDurationMS {
			m.MinDurationMS = ms
		}
		if ms > m.MaxDurationMS {
			m.MaxDurationMS = ms
		}
	}

	m.MeanDurationMS = totalMS / float64(n)
	m.MeanCells = totalCells / float64(n)
	m.MeanBranches = totalBranches / float64(n)
	m.MeanTasks = totalTasks / float64(n)
	return m, nil
}

// rank orders successful variants by score and fills Best, Worst, and
// the summary.
func rank(res *SweepResults) {
	ok := make([]*Variant, 0, len(res.Variants))
	for i := range res.Variants {
		if res.Variants[i].Error == "" {
			ok = append(ok, &res.Variants[i])
		}
	}

	res.Summary = Summary{
		TotalVariants: len(res.Variants),
		SuccessCount:  len(ok),
		FailureCount:  len(res.Variants) - len(ok),
	}
	if len(ok) == 0 {
		return
	}

	sort.SliceStable(ok, func(i, j int) bool { return ok[i].Score < ok[j].Score })
	for i, v := range ok {
		v.Rank = i + 1
	}

	res.Best = ok[0]
	res.Worst = ok[len(ok)-1]
	res.Summary.BestScore = res.Best.Score
	res.Summary.WorstScore = res.Worst.Score
	res.Summary.ScoreRange = res.Worst.Score - res.Best.Score
}
