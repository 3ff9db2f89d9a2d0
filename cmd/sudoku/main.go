package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := solve(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := generate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "sweep":
		if err := sweep(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "prove":
		if err := prove(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "events":
		if err := events(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("sudoku version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sudoku - parallel Sudoku search engine

Usage:
  sudoku <command> [options]

Commands:
  solve      Solve puzzle files with the parallel backtracking engine
  validate   Check a puzzle file for conflicting givens
  generate   Generate a puzzle with a unique solution
  sweep      Benchmark worker count against parallelization depth
  prove      Produce a zero-knowledge proof of solvability
  events     Show a timeline from a solve event log
  help       Show this help message
  version    Show version information

Examples:
  # Solve a puzzle with 8 workers, fanning out tasks above depth 4
  sudoku solve puzzle.json --workers 8 --depth 4 --output solution.json

  # Generate a 9x9 puzzle with 28 clues
  sudoku generate --dim 9 --clues 28 --seed 42 --output puzzle.json

  # Sweep parameters and save the ranking
  sudoku sweep puzzle.json --workers 1,2,4,8 --depths 1,2,4,8 --output sweep.json

  # Prove the puzzle solvable without revealing the solution
  sudoku prove puzzle.json solution.json

For command-specific help, run:
  sudoku <command> --help`)
}
