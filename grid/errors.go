package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidSymbol indicates a cell that is neither Filled nor Empty.
	ErrInvalidSymbol = errors.New("grid: invalid symbol")
	// ErrTooSmall indicates a grid with no interior left after stripping its border.
	ErrTooSmall = errors.New("grid: grid must be at least 3x3 to have an interior")
	// ErrDimensionMismatch indicates grids that cannot be joined edge to edge.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")
)
