package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/board"
	"github.com/pflow-xyz/go-sudoku/prover"
	"github.com/pflow-xyz/go-sudoku/search"
)

func prove(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	workers := fs.Int("workers", 0, "Worker pool size when solving (0 = one per core)")
	depth := fs.Int("depth", 2, "Parallelization depth gate when solving")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku prove <puzzle> [solution] [options]

Produce and verify a Groth16 proof that the puzzle has a valid
solution, without revealing it. If no solution file is given, the
puzzle is solved first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return fmt.Errorf("puzzle file required")
	}

	puzzle, err := loadPuzzle(fs.Arg(0))
	if err != nil {
		return err
	}

	var solution *board.Board
	if fs.NArg() == 2 {
		if solution, err = loadPuzzle(fs.Arg(1)); err != nil {
			return err
		}
	} else {
		engine, err := search.New(*depth, search.NewPool(*workers))
		if err != nil {
			return err
		}
		var stats search.Stats
		solution, stats, err = engine.Run(context.Background(), puzzle)
		if err != nil {
			return err
		}
		fmt.Printf("solved in %v\n", stats.Duration)
	}

	p := prover.New()
	fmt.Printf("compiling circuit for dimension %d\n", puzzle.Dim())
	if _, err := p.Compile(puzzle.Dim()); err != nil {
		return err
	}

	proof, err := p.Prove(puzzle, solution)
	if err != nil {
		return err
	}
	if err := p.Verify(proof); err != nil {
		return fmt.Errorf("proof did not verify: %w", err)
	}
	fmt.Println("proof verified: the puzzle is solvable")
	return nil
}
