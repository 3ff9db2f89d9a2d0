package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/pflow-xyz/go-sudoku/board"
	"github.com/pflow-xyz/go-sudoku/cache"
	"github.com/pflow-xyz/go-sudoku/eventlog"
	"github.com/pflow-xyz/go-sudoku/parser"
	"github.com/pflow-xyz/go-sudoku/search"
	"github.com/pflow-xyz/go-sudoku/store"
)

func solve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	workers := fs.Int("workers", 0, "Worker pool size (0 = one per core)")
	depth := fs.Int("depth", 2, "Spawn parallel tasks while recursion depth is below this")
	output := fs.String("output", "", "Write the solution to this file (single puzzle only)")
	logFile := fs.String("log", "", "Append run events as JSONL to this file")
	dbPath := fs.String("db", "", "Record puzzles and runs in this SQLite database")
	useCache := fs.Bool("cache", true, "Reuse solutions for repeated puzzles within one batch")
	verbose := fs.Bool("verbose", false, "Log run events to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku solve <puzzle...> [options]

Solve one or more puzzle files (.json documents or text grids).

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Solve with defaults (all cores, depth gate 2)
  sudoku solve puzzle.json

  # Solve a batch, recording runs in SQLite
  sudoku solve a.json b.json c.json --db runs.db

  # Keep an event log
  sudoku solve puzzle.json --log events.jsonl --verbose
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}
	if *output != "" && fs.NArg() > 1 {
		return fmt.Errorf("--output only applies to a single puzzle")
	}

	pool := search.NewPool(*workers)
	engine, err := search.New(*depth, pool)
	if err != nil {
		return err
	}
	logger := newLogger(*verbose)

	var sink io.Writer
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open event log: %w", err)
		}
		defer f.Close()
		sink = f
	}

	var db *store.Store
	if *dbPath != "" {
		db, err = store.Open(*dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	var solveCache *cache.SolveCache
	if *useCache {
		solveCache = cache.NewSolveCache(0)
	}

	ctx := context.Background()
	solved := 0
	for _, path := range fs.Args() {
		puzzle, err := loadPuzzle(path)
		if err != nil {
			return err
		}

		ok, err := solveOne(ctx, engine, pool, puzzle, path, sink, logger, db, solveCache, *output)
		if err != nil {
			return err
		}
		if ok {
			solved++
		}
	}

	if fs.NArg() > 1 {
		fmt.Printf("solved %d of %d puzzles\n", solved, fs.NArg())
		if solveCache != nil {
			s := solveCache.Stats()
			fmt.Printf("cache: %d hits, %d misses\n", s.Hits, s.Misses)
		}
	}
	return nil
}

// solveOne runs the engine on one puzzle, reporting, recording, and
// persisting the outcome. It returns whether the puzzle was solved;
// an unsolvable puzzle is reported but is not an error.
func solveOne(ctx context.Context, engine *search.Engine, pool *search.Pool,
	puzzle *board.Board, path string, sink io.Writer, logger zerolog.Logger,
	db *store.Store, solveCache *cache.SolveCache, output string) (bool, error) {

	rec := eventlog.NewRecorder(sink, logger)
	if err := rec.Started(puzzle, pool.Workers(), engine.MaxParallelDepth()); err != nil {
		return false, err
	}

	var stats search.Stats
	run := func() (*board.Board, error) {
		var err error
		var sol *board.Board
		sol, stats, err = engine.Run(ctx, puzzle)
		return sol, err
	}

	var solution *board.Board
	var err error
	if solveCache != nil {
		solution, err = solveCache.GetOrCompute(puzzle, run)
	} else {
		solution, err = run()
	}

	if errors.Is(err, search.ErrUnsolvable) {
		if recErr := rec.Exhausted(stats); recErr != nil {
			return false, recErr
		}
		fmt.Printf("%s: unsolvable (%v, %d candidates tried)\n", path, stats.Duration, stats.Branches)
		if db != nil {
			if _, dbErr := recordRun(db, puzzle, path, pool, engine, stats, nil); dbErr != nil {
				return false, dbErr
			}
		}
		return false, nil
	}
	if err != nil {
		if recErr := rec.Failed(stats, err); recErr != nil {
			return false, recErr
		}
		return false, err
	}

	if err := rec.Solved(stats); err != nil {
		return false, err
	}

	fmt.Printf("%s: solved in %v (%d cells, %d candidates, %d tasks)\n",
		path, stats.Duration, stats.Cells, stats.Branches, stats.Tasks)
	fmt.Print(parser.ToText(solution))

	if output != "" {
		if err := savePuzzle(solution, output, "solution"); err != nil {
			return false, err
		}
	}
	if db != nil {
		if _, err := recordRun(db, puzzle, path, pool, engine, stats, solution); err != nil {
			return false, err
		}
	}
	return true, nil
}

func recordRun(db *store.Store, puzzle *board.Board, name string,
	pool *search.Pool, engine *search.Engine, stats search.Stats,
	solution *board.Board) (string, error) {

	puzzleID, err := db.SavePuzzle(puzzle, name)
	if err != nil {
		return "", err
	}
	return db.RecordSolve(puzzleID, store.SolveRecord{
		Workers:  pool.Workers(),
		MaxDepth: engine.MaxParallelDepth(),
		Solved:   solution != nil,
		Stats:    stats,
		Solution: solution,
	})
}
