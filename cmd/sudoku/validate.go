package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pflow-xyz/go-sudoku/generator"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	unique := fs.Bool("unique", false, "Also check that the puzzle has exactly one solution")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sudoku validate <puzzle> [options]

Check a puzzle file for conflicting givens.

Options:
`)
		fs.PrintDefaults()
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

	conflicts := puzzle.Validate()
	if len(conflicts) > 0 {
		for _, c := range conflicts {
			fmt.Printf("conflict: value %d at column %d, row %d\n", c.Value, c.X, c.Y)
		}
		return fmt.Errorf("%d conflicting givens", len(conflicts))
	}

	free := puzzle.FreeCells()
	fmt.Printf("valid: %dx%d puzzle, %d givens, %d free cells\n",
		puzzle.Dim(), puzzle.Dim(), puzzle.Dim()*puzzle.Dim()-free, free)
	if puzzle.IsComplete() {
		fmt.Println("the grid is already complete")
		return nil
	}

	if *unique {
		n, err := generator.CountSolutions(context.Background(), puzzle, 2)
		if err != nil {
			return err
		}
		switch n {
		case 0:
			return fmt.Errorf("puzzle has no solution")
		case 1:
			fmt.Println("solution is unique")
		default:
			return fmt.Errorf("puzzle has more than one solution")
		}
	}
	return nil
}
