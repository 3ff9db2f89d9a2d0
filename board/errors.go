package board

import "errors"

// Error types for the board package.
var (
	// ErrDimensionMismatch is returned when a cell list length does not
	// match the board dimension.
	ErrDimensionMismatch = errors.New("cell count does not match board dimension")

	// ErrDimensionNotSquare is returned when the requested dimension is
	// not a positive perfect square.
	ErrDimensionNotSquare = errors.New("board dimension must be a perfect square")

	// ErrOutOfRange is returned when cell coordinates fall outside the
	// board. It indicates a caller bug, not bad puzzle input.
	ErrOutOfRange = errors.New("cell coordinates out of range")
)
