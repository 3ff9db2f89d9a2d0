package prover

import (
	"fmt"
	"math"

	"github.com/consensys/gnark/frontend"

	"github.com/pflow-xyz/go-sudoku/board"
)

// Circuit proves knowledge of a valid completion of a public puzzle
// without revealing the completion. Givens are public, the solution is
// the secret witness; both are flat row-major cell lists.
//
// Constraints:
//   - every solution cell is in [1, D]
//   - every non-zero given is preserved: g * (g - s) == 0
//   - all values in each row, column, and subgrid are pairwise distinct
type Circuit struct {
	Givens   []frontend.Variable `gnark:",public"`
	Solution []frontend.Variable `gnark:",secret"`

	dim int
	sub int
}

// NewCircuit creates a circuit template for dim x dim boards. dim must
// be a positive perfect square.
func NewCircuit(dim int) (*Circuit, error) {
	sub := int(math.Sqrt(float64(dim)))
	if dim < 1 || sub*sub != dim {
		return nil, fmt.Errorf("circuit dimension %d is not a perfect square", dim)
	}
	return &Circuit{
		Givens:   make([]frontend.Variable, dim*dim),
		Solution: make([]frontend.Variable, dim*dim),
		dim:      dim,
		sub:      sub,
	}, nil
}

// Define declares the Sudoku validity constraints.
func (c *Circuit) Define(api frontend.API) error {
	d := c.dim

	for i := range c.Solution {
		api.AssertIsLessOrEqual(1, c.Solution[i])
		api.AssertIsLessOrEqual(c.Solution[i], d)
		api.AssertIsEqual(api.Mul(c.Givens[i], api.Sub(c.Givens[i], c.Solution[i])), 0)
	}

	// Rows
	for y := 0; y < d; y++ {
		for x1 := 0; x1 < d; x1++ {
			for x2 := x1 + 1; x2 < d; x2++ {
				api.AssertIsDifferent(c.Solution[x1+y*d], c.Solution[x2+y*d])
			}
		}
	}

	// Columns
	for x := 0; x < d; x++ {
		for y1 := 0; y1 < d; y1++ {
			for y2 := y1 + 1; y2 < d; y2++ {
				api.AssertIsDifferent(c.Solution[x+y1*d], c.Solution[x+y2*d])
			}
		}
	}

	// Subgrids; pairs sharing a row or column are already constrained.
	for y0 := 0; y0 < d; y0 += c.sub {
		for x0 := 0; x0 < d; x0 += c.sub {
			cells := make([]int, 0, d)
			for dy := 0; dy < c.sub; dy++ {
				for dx := 0; dx < c.sub; dx++ {
					cells = append(cells, x0+dx+(y0+dy)*d)
				}
			}
			for i := 0; i < len(cells); i++ {
				for j := i + 1; j < len(cells); j++ {
					if cells[i]%d == cells[j]%d || cells[i]/d == cells[j]/d {
						continue
					}
					api.AssertIsDifferent(c.Solution[cells[i]], c.Solution[cells[j]])
				}
			}
		}
	}

	return nil
}

// assignment builds the witness for a puzzle/solution pair.
func assignment(puzzle, solution *board.Board) (*Circuit, error) {
	if puzzle.Dim() != solution.Dim() {
		return nil, fmt.Errorf("puzzle dimension %d does not match solution dimension %d",
			puzzle.Dim(), solution.Dim())
	}
	c, err := NewCircuit(puzzle.Dim())
	if err != nil {
		return nil, err
	}
	for i, v := range puzzle.Cells() {
		c.Givens[i] = v
	}
	for i, v := range solution.Cells() {
		c.Solution[i] = v
	}
	return c, nil
}
