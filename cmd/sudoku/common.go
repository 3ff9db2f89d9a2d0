package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pflow-xyz/go-sudoku/board"
	"github.com/pflow-xyz/go-sudoku/parser"
)

// loadPuzzle reads a puzzle file, choosing the format by extension:
// .json uses the JSON document format, anything else the text grid.
func loadPuzzle(path string) (*board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}
	if strings.HasSuffix(path, ".json") {
		b, err := parser.FromJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return b, nil
	}
	b, err := parser.FromText(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// savePuzzle writes a board in the format matching the file extension.
func savePuzzle(b *board.Board, path, name string) error {
	var data []byte
	if strings.HasSuffix(path, ".json") {
		var err error
		data, err = parser.ToJSON(b, name)
		if err != nil {
			return err
		}
	} else {
		data = []byte(parser.ToText(b))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// parseIntList parses comma-separated integers like "1,2,4,8".
func parseIntList(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	return out, nil
}

// newLogger returns a console logger, disabled unless verbose.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
