// Package board implements the Sudoku grid model.
// A board is a fixed-dimension D x D grid of cells addressed by
// (x, y) where x selects the column and y selects the row. Cells hold
// either Empty or a value in [1, D]. The dimension must be a perfect
// square so the grid divides into sqrt(D) x sqrt(D) subgrids.
package board

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// Empty marks a cell with no value assigned.
const Empty = 0

// Board is a fixed-shape grid. The dimension never changes after
// construction; cell contents are mutable through Set. A Board is not
// safe for concurrent mutation — callers that branch must work on
// their own Clone.
type Board struct {
	dim   int
	sub   int
	cells []int
}

// New creates a board of the given dimension from a flat row-major
// cell list. The list length must be exactly dim*dim and dim must be a
// perfect square.
func New(dim int, values []int) (*Board, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension %d", ErrDimensionNotSquare, dim)
	}
	sub := int(math.Sqrt(float64(dim)))
	if sub*sub != dim {
		return nil, fmt.Errorf("%w: dimension %d", ErrDimensionNotSquare, dim)
	}
	if len(values) != dim*dim {
		return nil, fmt.Errorf("%w: %d cells for dimension %d (want %d)",
			ErrDimensionMismatch, len(values), dim, dim*dim)
	}
	cells := make([]int, len(values))
	copy(cells, values)
	return &Board{dim: dim, sub: sub, cells: cells}, nil
}

// NewEmpty creates an all-empty board of the given dimension.
func NewEmpty(dim int) (*Board, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: dimension %d", ErrDimensionNotSquare, dim)
	}
	return New(dim, make([]int, dim*dim))
}

// FromList creates a board from a flat cell list, inferring the
// dimension from the list length. The length must be a fourth power
// (D*D cells with D itself a perfect square).
func FromList(values []int) (*Board, error) {
	dim := int(math.Sqrt(float64(len(values))))
	if dim*dim != len(values) {
		return nil, fmt.Errorf("%w: %d cells is not a square count",
			ErrDimensionMismatch, len(values))
	}
	return New(dim, values)
}

// Dim returns the board dimension D.
func (b *Board) Dim() int { return b.dim }

// SubgridSize returns sqrt(D), the side length of one subgrid.
func (b *Board) SubgridSize() int { return b.sub }

func (b *Board) index(x, y int) int { return x + y*b.dim }

func (b *Board) checkBounds(x, y int) error {
	if x < 0 || x >= b.dim || y < 0 || y >= b.dim {
		return fmt.Errorf("%w: cell (%d,%d) on %dx%d board", ErrOutOfRange, x, y, b.dim, b.dim)
	}
	return nil
}

// Get returns the value at column x, row y.
func (b *Board) Get(x, y int) (int, error) {
	if err := b.checkBounds(x, y); err != nil {
		return 0, err
	}
	return b.cells[b.index(x, y)], nil
}

// Set overwrites the cell at column x, row y. It performs no
// constraint validation; callers decide legality via IsCandidate.
func (b *Board) Set(x, y, value int) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}
	b.cells[b.index(x, y)] = value
	return nil
}

// IsCandidate reports whether value can be placed at (x, y) without
// duplicating an existing value in the cell's row, column, or subgrid.
// The cell's own current value is not special-cased: a value already
// present anywhere in the three units is rejected.
func (b *Board) IsCandidate(x, y, value int) (bool, error) {
	if err := b.checkBounds(x, y); err != nil {
		return false, err
	}

	// Scan along the second coordinate with x fixed.
	for i := 0; i < b.dim; i++ {
		if b.cells[b.index(x, i)] == value {
			return false, nil
		}
	}

	// Scan along the first coordinate with y fixed.
	for i := 0; i < b.dim; i++ {
		if b.cells[b.index(i, y)] == value {
			return false, nil
		}
	}

	// Scan the subgrid containing (x, y).
	x0 := (x / b.sub) * b.sub
	y0 := (y / b.sub) * b.sub
	for i := x0; i < x0+b.sub; i++ {
		for j := y0; j < y0+b.sub; j++ {
			if b.cells[b.index(i, j)] == value {
				return false, nil
			}
		}
	}

	return true, nil
}

// Clone returns a deep copy. The search engine clones before every
// trial assignment so sibling branches never share cell storage.
func (b *Board) Clone() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{dim: b.dim, sub: b.sub, cells: cells}
}

// Cells returns a copy of the flat row-major cell list.
func (b *Board) Cells() []int {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// FreeCells returns the number of empty cells.
func (b *Board) FreeCells() int {
	n := 0
	for _, v := range b.cells {
		if v == Empty {
			n++
		}
	}
	return n
}

// Occupancy returns a 256-bit bitmap with one bit per cell, set where
// the cell is filled. It is only defined for dimensions up to 16
// (16*16 = 256 cells); for larger boards ok is false. Callers use it
// as a cheap fingerprint prefilter before comparing full cell lists.
func (b *Board) Occupancy() (uint256.Int, bool) {
	var occ uint256.Int
	if b.dim > 16 {
		return occ, false
	}
	for i, v := range b.cells {
		if v != Empty {
			occ[i/64] |= 1 << uint(i%64)
		}
	}
	return occ, true
}

// String renders the board as comma-separated rows terminated by "//",
// one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.dim; y++ {
		for x := 0; x < b.dim; x++ {
			sb.WriteString(strconv.Itoa(b.cells[b.index(x, y)]))
			sb.WriteString(", ")
		}
		sb.WriteString("//\n")
	}
	return sb.String()
}
