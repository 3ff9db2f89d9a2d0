package store

import (
	"errors"
	"testing"
	"time"

	"github.com/pflow-xyz/go-sudoku/board"
	"github.com/pflow-xyz/go-sudoku/search"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPuzzle(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(4, []int{
		1, 2, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSaveGetPuzzle(t *testing.T) {
	s := openTestStore(t)
	puzzle := testPuzzle(t)

	id, err := s.SavePuzzle(puzzle, "mini")
	if err != nil {
		t.Fatalf("SavePuzzle: %v", err)
	}
	if id == "" {
		t.Fatal("empty puzzle ID")
	}

	got, name, err := s.GetPuzzle(id)
	if err != nil {
		t.Fatalf("GetPuzzle: %v", err)
	}
	if name != "mini" {
		t.Errorf("name = %q, want %q", name, "mini")
	}
	want := puzzle.Cells()
	for i, v := range got.Cells() {
		if v != want[i] {
			t.Fatalf("cell %d = %d, want %d", i, v, want[i])
		}
	}
}

func TestGetPuzzleNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, _, err := s.GetPuzzle("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListPuzzles(t *testing.T) {
	s := openTestStore(t)

	if metas, err := s.ListPuzzles(); err != nil || len(metas) != 0 {
		t.Fatalf("empty store list = %v, %v", metas, err)
	}

	first, err := s.SavePuzzle(testPuzzle(t), "first")
	if err != nil {
		t.Fatal(err)
	}
	empty, _ := board.NewEmpty(9)
	second, err := s.SavePuzzle(empty, "second")
	if err != nil {
		t.Fatal(err)
	}

	metas, err := s.ListPuzzles()
	if err != nil {
		t.Fatalf("ListPuzzles: %v", err)
	}
	if len(metas) != 2 {
		t.Fatalf("listed %d puzzles, want 2", len(metas))
	}

	byID := make(map[string]PuzzleMeta)
	for _, m := range metas {
		byID[m.ID] = m
	}
	if m := byID[first]; m.Dimension != 4 || m.FreeCells != 12 {
		t.Errorf("first puzzle meta = %+v", m)
	}
	if m := byID[second]; m.Dimension != 9 || m.FreeCells != 81 {
		t.Errorf("second puzzle meta = %+v", m)
	}
}

func TestRecordAndListSolves(t *testing.T) {
	s := openTestStore(t)
	puzzle := testPuzzle(t)
	puzzleID, err := s.SavePuzzle(puzzle, "mini")
	if err != nil {
		t.Fatal(err)
	}

	solution, _ := board.New(4, []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	})

	solveID, err := s.RecordSolve(puzzleID, SolveRecord{
		Workers:  4,
		MaxDepth: 2,
		Solved:   true,
		Stats: search.Stats{
			Cells: 30, Branches: 14, Tasks: 5, Duration: 3 * time.Millisecond,
		},
		Solution: solution,
	})
	if err != nil {
		t.Fatalf("RecordSolve: %v", err)
	}

	if _, err := s.RecordSolve(puzzleID, SolveRecord{
		Workers: 1, MaxDepth: 1, Solved: false,
		Stats: search.Stats{Cells: 10, Branches: 4},
	}); err != nil {
		t.Fatalf("RecordSolve unsolved: %v", err)
	}

	rows, err := s.ListSolves(puzzleID)
	if err != nil {
		t.Fatalf("ListSolves: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("listed %d solves, want 2", len(rows))
	}

	var solved *SolveRow
	for i := range rows {
		if rows[i].ID == solveID {
			solved = &rows[i]
		}
	}
	if solved == nil {
		t.Fatal("recorded solve not listed")
	}
	if !solved.Record.Solved || solved.Record.Workers != 4 || solved.Record.MaxDepth != 2 {
		t.Errorf("solve record = %+v", solved.Record)
	}
	if solved.Record.Stats.Branches != 14 {
		t.Errorf("branches = %d, want 14", solved.Record.Stats.Branches)
	}
	if solved.Record.Stats.Duration != 3*time.Millisecond {
		t.Errorf("duration = %v, want 3ms", solved.Record.Stats.Duration)
	}
	if solved.Record.Solution == nil {
		t.Fatal("solution not round-tripped")
	}
	if v, _ := solved.Record.Solution.Get(2, 0); v != 3 {
		t.Errorf("solution cell (2,0) = %d, want 3", v)
	}

	for _, row := range rows {
		if row.ID != solveID && row.Record.Solution != nil {
			t.Error("unsolved run should have no solution")
		}
	}
}

func TestListSolvesEmpty(t *testing.T) {
	s := openTestStore(t)
	rows, err := s.ListSolves("missing")
	if err != nil {
		t.Fatalf("ListSolves: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}
