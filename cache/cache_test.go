package cache

import (
	"errors"
	"testing"

	"github.com/pflow-xyz/go-sudoku/board"
)

func puzzle4(t *testing.T, cells []int) *board.Board {
	t.Helper()
	b, err := board.New(4, cells)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNewSolveCache(t *testing.T) {
	c := NewSolveCache(100)
	if c.Size() != 0 {
		t.Error("new cache should be empty")
	}
}

func TestPutGet(t *testing.T) {
	c := NewSolveCache(100)

	puzzle := puzzle4(t, []int{
		1, 2, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
	solution := puzzle4(t, []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	})

	c.Put(puzzle, solution)

	got := c.Get(puzzle)
	if got == nil {
		t.Fatal("expected cache hit")
	}
	want := solution.Cells()
	for i, v := range got.Cells() {
		if v != want[i] {
			t.Fatalf("cell %d = %d, want %d", i, v, want[i])
		}
	}

	// A different puzzle with the same occupancy pattern must miss.
	other := puzzle4(t, []int{
		2, 1, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
	if c.Get(other) != nil {
		t.Error("different puzzle should miss")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	c := NewSolveCache(10)
	puzzle := puzzle4(t, make([]int, 16))
	solution := puzzle4(t, []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	})
	c.Put(puzzle, solution)

	got := c.Get(puzzle)
	got.Set(0, 0, 9)

	again := c.Get(puzzle)
	if v, _ := again.Get(0, 0); v != 1 {
		t.Error("mutating a cached result leaked back into the cache")
	}
}

func TestEviction(t *testing.T) {
	c := NewSolveCache(2)
	sol := puzzle4(t, []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	})

	for i := 1; i <= 3; i++ {
		p, _ := board.NewEmpty(4)
		p.Set(0, 0, i)
		c.Put(p, sol)
	}

	if c.Size() > 2 {
		t.Errorf("cache size should be <= 2, got %d", c.Size())
	}
	if c.Stats().Evictions == 0 {
		t.Error("expected at least one eviction")
	}
}

func TestGetOrCompute(t *testing.T) {
	c := NewSolveCache(100)
	puzzle := puzzle4(t, make([]int, 16))
	solution := puzzle4(t, []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	})

	computeCount := 0
	compute := func() (*board.Board, error) {
		computeCount++
		return solution, nil
	}

	if _, err := c.GetOrCompute(puzzle, compute); err != nil {
		t.Fatal(err)
	}
	if computeCount != 1 {
		t.Error("should compute on first call")
	}

	if _, err := c.GetOrCompute(puzzle, compute); err != nil {
		t.Fatal(err)
	}
	if computeCount != 1 {
		t.Error("should not compute on second call")
	}
}

func TestGetOrComputeError(t *testing.T) {
	c := NewSolveCache(100)
	puzzle := puzzle4(t, make([]int, 16))
	wantErr := errors.New("boom")

	_, err := c.GetOrCompute(puzzle, func() (*board.Board, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected compute error, got %v", err)
	}
	if c.Size() != 0 {
		t.Error("failed computation must not be cached")
	}
}

func TestStats(t *testing.T) {
	c := NewSolveCache(10)
	puzzle := puzzle4(t, make([]int, 16))
	sol := puzzle4(t, []int{
		1, 2, 3, 4,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	})

	c.Get(puzzle) // miss
	c.Put(puzzle, sol)
	c.Get(puzzle) // hit

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("hits=%d misses=%d, want 1 and 1", s.Hits, s.Misses)
	}
	if s.HitRate != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", s.HitRate)
	}
}
