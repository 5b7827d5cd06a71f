package pattern

import "errors"

var (
	// ErrEmptyPattern indicates pattern art without any filled cell.
	ErrEmptyPattern = errors.New("pattern: no filled cells")
	// ErrNoMatch indicates no orientation of the image contains the pattern.
	ErrNoMatch = errors.New("pattern: no orientation contains the pattern")
	// ErrAmbiguous indicates more than one orientation contains the pattern
	// in an exhaustive search.
	ErrAmbiguous = errors.New("pattern: several orientations contain the pattern")
)
