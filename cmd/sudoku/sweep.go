package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/results"
)

func sweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	workers := fs.String("workers", "1,2,4,8", "Comma-separated worker counts")
	depths := fs.String("depths", "1,2,4,8", "Comma-separated parallelization depth gates")
	reps := fs.Int("reps", 3, "Repetitions per configuration")
	output := fs.String("output", "", "Write the full results as JSON to this file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku sweep <puzzle> [options]

Benchmark worker count against parallelization depth. Every
(workers, depth) pair solves the puzzle --reps times; configurations
are ranked by mean solve time.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Example:
  sudoku sweep puzzle.json --workers 1,4,16 --depths 1,2,4,8,64 --reps 5
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}

	puzzle, err := loadPuzzle(fs.Arg(0))
	if err != nil {
		return err
	}

	cfg := results.DefaultConfig()
	cfg.Repetitions = *reps
	if cfg.Workers, err = parseIntList(*workers); err != nil {
		return fmt.Errorf("--workers: %w", err)
	}
	if cfg.Depths, err = parseIntList(*depths); err != nil {
		return fmt.Errorf("--depths: %w", err)
	}

	res, err := results.Run(context.Background(), puzzle, fs.Arg(0), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%d variants, %d solved, %d failed\n",
		res.Summary.TotalVariants, res.Summary.SuccessCount, res.Summary.FailureCount)
	fmt.Printf("%-6s %-8s %-6s %-12s %-12s %s\n",
		"rank", "workers", "depth", "mean ms", "min ms", "tasks")
	for _, v := range res.Variants {
		if v.Error != "" {
			fmt.Printf("%-6s %-8d %-6d %s\n", "-", v.Workers, v.MaxDepth, v.Error)
			continue
		}
		fmt.Printf("%-6d %-8d %-6d %-12.3f %-12.3f %.1f\n",
			v.Rank, v.Workers, v.MaxDepth,
			v.Metrics.MeanDurationMS, v.Metrics.MinDurationMS, v.Metrics.MeanTasks)
	}
	if res.Best != nil {
		fmt.Printf("best: %d workers, depth %d (%.3f ms)\n",
			res.Best.Workers, res.Best.MaxDepth, res.Best.Score)
	}

	if *output != "" {
		if err := results.WriteJSON(res, *output); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *output)
	}
	return nil
}
