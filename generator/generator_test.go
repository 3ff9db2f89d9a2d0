package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/pflow-xyz/go-sudoku/board"
)

func TestNewRejectsBadDimension(t *testing.T) {
	if _, err := New(5, 1); err == nil {
		t.Error("expected error for non-square dimension")
	}
	if _, err := New(0, 1); err == nil {
		t.Error("expected error for dimension 0")
	}
}

func TestGenerate4x4(t *testing.T) {
	g, err := New(4, 42)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	// A greedy carve can stall above an aggressive clue target; the
	// puzzle it returns alongside ErrTargetUnreachable is still unique.
	puzzle, solution, err := g.Generate(ctx, 6)
	if err != nil && !errors.Is(err, ErrTargetUnreachable) {
		t.Fatalf("Generate: %v", err)
	}

	if !solution.IsComplete() {
		t.Error("carving source is not a complete valid board")
	}
	if conflicts := puzzle.Validate(); len(conflicts) != 0 {
		t.Errorf("puzzle givens conflict: %v", conflicts)
	}

	givens := puzzle.Dim()*puzzle.Dim() - puzzle.FreeCells()
	if err == nil && givens != 6 {
		t.Errorf("puzzle has %d clues, want 6", givens)
	}
	if givens == 16 {
		t.Error("carving removed no clues at all")
	}

	// Every given must come from the solution grid.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pv, _ := puzzle.Get(x, y)
			if pv == board.Empty {
				continue
			}
			sv, _ := solution.Get(x, y)
			if pv != sv {
				t.Errorf("clue at (%d,%d) is %d but solution has %d", x, y, pv, sv)
			}
		}
	}

	n, err := CountSolutions(ctx, puzzle, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("generated puzzle has %d solutions, want 1", n)
	}
}

func TestGenerate9x9(t *testing.T) {
	g, err := New(9, 7)
	if err != nil {
		t.Fatal(err)
	}

	// A loose clue target keeps carving cheap; uniqueness still holds.
	puzzle, _, err := g.Generate(context.Background(), 45)
	if err != nil && !errors.Is(err, ErrTargetUnreachable) {
		t.Fatalf("Generate: %v", err)
	}
	n, err := CountSolutions(context.Background(), puzzle, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("generated puzzle has %d solutions, want 1", n)
	}
}

func TestGenerateReproducible(t *testing.T) {
	ctx := context.Background()

	g1, _ := New(4, 99)
	p1, _, err := g1.Generate(ctx, 8)
	if err != nil && !errors.Is(err, ErrTargetUnreachable) {
		t.Fatal(err)
	}
	g2, _ := New(4, 99)
	p2, _, err := g2.Generate(ctx, 8)
	if err != nil && !errors.Is(err, ErrTargetUnreachable) {
		t.Fatal(err)
	}

	a, b := p1.Cells(), p2.Cells()
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed produced different puzzles")
		}
	}
}

func TestGenerateBadClueCount(t *testing.T) {
	g, _ := New(4, 1)
	if _, _, err := g.Generate(context.Background(), -1); err == nil {
		t.Error("expected error for negative clue count")
	}
	if _, _, err := g.Generate(context.Background(), 17); err == nil {
		t.Error("expected error for clue count above cell count")
	}
}

func TestCountSolutions(t *testing.T) {
	ctx := context.Background()

	t.Run("CompleteBoard", func(t *testing.T) {
		b, _ := board.New(4, []int{
			1, 2, 3, 4,
			3, 4, 1, 2,
			2, 1, 4, 3,
			4, 3, 2, 1,
		})
		n, err := CountSolutions(ctx, b, 2)
		if err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Errorf("complete board counts %d solutions, want 1", n)
		}
	})

	t.Run("EmptyBoardHitsLimit", func(t *testing.T) {
		b, _ := board.NewEmpty(4)
		n, err := CountSolutions(ctx, b, 2)
		if err != nil {
			t.Fatal(err)
		}
		if n != 2 {
			t.Errorf("empty board counts %d solutions, want limit 2", n)
		}
	})

	t.Run("ConflictingGivens", func(t *testing.T) {
		b, _ := board.New(4, []int{
			1, 1, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
			0, 0, 0, 0,
		})
		n, err := CountSolutions(ctx, b, 2)
		if err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Errorf("conflicting givens count %d solutions, want 0", n)
		}
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		b, _ := board.NewEmpty(4)
		if _, err := CountSolutions(ctx, b, 2); err != nil {
			t.Fatal(err)
		}
		if b.FreeCells() != 16 {
			t.Error("CountSolutions mutated its input")
		}
	})
}
