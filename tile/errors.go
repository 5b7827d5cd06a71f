package tile

import "errors"

var (
	// ErrMissingHeader indicates a block without a "Tile <id>:" line.
	ErrMissingHeader = errors.New("tile: missing \"Tile <id>:\" header")
	// ErrBadID indicates an identifier that is not a positive integer.
	ErrBadID = errors.New("tile: identifier must be a positive integer")
	// ErrNotSquare indicates a pixel grid whose height and width differ.
	ErrNotSquare = errors.New("tile: pixel grid is not square")
	// ErrTooSmall indicates a tile with no interior.
	ErrTooSmall = errors.New("tile: side length must be at least 3")
	// ErrDuplicateID indicates two blocks carrying the same identifier.
	ErrDuplicateID = errors.New("tile: duplicate identifier")
	// ErrSizeMismatch indicates tiles of different side lengths.
	ErrSizeMismatch = errors.New("tile: tiles differ in side length")
	// ErrNoOrientation indicates that none of the eight orientations
	// produces the requested border.
	ErrNoOrientation = errors.New("tile: no orientation matches border")
)
