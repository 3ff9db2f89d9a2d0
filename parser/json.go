// Package parser handles puzzle import/export. Puzzles travel either
// as JSON documents or as plain text grids; both carry the same flat
// row-major cell list the rest of the module works with, where 0 marks
// an empty cell and 1..D a fixed value.
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/pflow-xyz/go-sudoku/board"
)

// Document is the JSON puzzle format:
//
//	{
//	  "dimension": 9,
//	  "cells": [0, 3, 0, ...],
//	  "name": "daily-42"
//	}
//
// cells is row-major with dimension*dimension entries. name is
// optional metadata and never affects solving.
type Document struct {
	Dimension int    `json:"dimension"`
	Cells     []int  `json:"cells"`
	Name      string `json:"name,omitempty"`
}

// FromJSON parses a puzzle board from JSON bytes.
func FromJSON(data []byte) (*board.Board, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	b, err := board.New(doc.Dimension, doc.Cells)
	if err != nil {
		return nil, fmt.Errorf("puzzle document: %w", err)
	}
	return b, nil
}

// ToJSON serializes a board to the JSON puzzle format.
func ToJSON(b *board.Board, name string) ([]byte, error) {
	doc := Document{
		Dimension: b.Dim(),
		Cells:     b.Cells(),
		Name:      name,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal puzzle: %w", err)
	}
	return data, nil
}
