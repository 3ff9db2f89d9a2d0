package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pflow-xyz/go-sudoku/generator"
	"github.com/pflow-xyz/go-sudoku/parser"
)

func generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	dim := fs.Int("dim", 9, "Board dimension (must be a perfect square)")
	clues := fs.Int("clues", 0, "Target clue count (0 = a third of the cells)")
	seed := fs.Int64("seed", 0, "Random seed (0 = time-based)")
	output := fs.String("output", "", "Write the puzzle to this file instead of stdout")
	solutionFile := fs.String("solution", "", "Also write the full solution to this file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku generate [options]

Generate a puzzle with a unique solution.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  sudoku generate --dim 9 --clues 28 --output puzzle.json
  sudoku generate --dim 16 --seed 42 --solution answer.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("generate takes no positional arguments")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *clues == 0 {
		*clues = (*dim) * (*dim) / 3
	}

	gen, err := generator.New(*dim, *seed)
	if err != nil {
		return err
	}

	puzzle, solution, err := gen.Generate(context.Background(), *clues)
	if errors.Is(err, generator.ErrTargetUnreachable) {
		fmt.Fprintf(os.Stderr, "could not reach %d clues, keeping %d\n",
			*clues, puzzle.Dim()*puzzle.Dim()-puzzle.FreeCells())
	} else if err != nil {
		return err
	}

	if *output != "" {
		if err := savePuzzle(puzzle, *output, fmt.Sprintf("generated-%d", *seed)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *output)
	} else {
		fmt.Print(parser.ToText(puzzle))
	}

	if *solutionFile != "" {
		if err := savePuzzle(solution, *solutionFile, fmt.Sprintf("solution-%d", *seed)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *solutionFile)
	}
	return nil
}
