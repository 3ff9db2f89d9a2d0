package prover

import (
	"testing"

	"github.com/pflow-xyz/go-sudoku/board"
)

func boards4(t *testing.T) (puzzle, solution *board.Board) {
	t.Helper()
	var err error
	puzzle, err = board.New(4, []int{
		1, 2, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	solution, err = board.New(4, []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	return puzzle, solution
}

func TestNewCircuitBadDimension(t *testing.T) {
	for _, dim := range []int{0, -4, 5, 8} {
		if _, err := NewCircuit(dim); err == nil {
			t.Errorf("dimension %d: expected error", dim)
		}
	}
}

func TestCompile(t *testing.T) {
	p := New()

	cc, err := p.Compile(4)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if cc.Dim != 4 {
		t.Errorf("dim = %d, want 4", cc.Dim)
	}
	if cc.Constraints == 0 {
		t.Error("compiled circuit has no constraints")
	}

	// Second compile hits the cache.
	again, err := p.Compile(4)
	if err != nil {
		t.Fatal(err)
	}
	if again != cc {
		t.Error("expected cached compiled circuit")
	}
}

func TestProveAndVerify(t *testing.T) {
	p := New()
	puzzle, solution := boards4(t)

	proof, err := p.Prove(puzzle, solution)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if err := p.Verify(proof); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestProveRejectsInvalidSolution(t *testing.T) {
	p := New()
	puzzle, solution := boards4(t)

	t.Run("DuplicateInRow", func(t *testing.T) {
		bad := solution.Clone()
		bad.Set(2, 0, 1) // row 0 now has two 1s
		if _, err := p.Prove(puzzle, bad); err == nil {
			t.Error("expected proving to fail for invalid solution")
		}
	})

	t.Run("ChangedGiven", func(t *testing.T) {
		// A complete valid grid that contradicts the givens.
		other, err := board.New(4, []int{
			2, 1, 4, 3,
			4, 3, 2, 1,
			1, 2, 3, 4,
			3, 4, 1, 2,
		})
		if err != nil {
			t.Fatal(err)
		}
		if !other.IsComplete() {
			t.Fatal("fixture grid should be valid")
		}
		if _, err := p.Prove(puzzle, other); err == nil {
			t.Error("expected proving to fail when a given changes")
		}
	})

	t.Run("EmptyCell", func(t *testing.T) {
		bad := solution.Clone()
		bad.Set(3, 3, board.Empty)
		if _, err := p.Prove(puzzle, bad); err == nil {
			t.Error("expected proving to fail for an empty cell")
		}
	})
}

func TestProveDimensionMismatch(t *testing.T) {
	p := New()
	puzzle, _ := boards4(t)
	big, _ := board.NewEmpty(9)
	if _, err := p.Prove(puzzle, big); err == nil {
		t.Error("expected error for mismatched dimensions")
	}
}

func TestVerifyUnknownDimension(t *testing.T) {
	p := New()
	if err := p.Verify(&Proof{Dim: 9}); err == nil {
		t.Error("expected error for unregistered dimension")
	}
}
