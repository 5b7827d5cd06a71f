package pattern

import (
	"fmt"

	"github.com/katalvlaran/mosaic/grid"
)

// Match is the outcome of a Search: the orientation in which the pattern
// was found and how many times it occurs there.
type Match struct {
	Orientation grid.Orientation
	Count       int
}

// SearchOption tunes Search and Roughness.
type SearchOption func(*searchOptions)

type searchOptions struct {
	exhaustive bool
}

// WithExhaustive makes Search scan all eight orientations and fail with
// ErrAmbiguous if more than one of them contains the pattern.
func WithExhaustive() SearchOption {
	return func(o *searchOptions) { o.exhaustive = true }
}

// Search returns the first orientation, in grid.Orientations order, in
// which img contains p, and the match count there. ErrNoMatch is returned
// when no orientation matches.
func Search(img grid.Grid, p Pattern, opts ...SearchOption) (Match, error) {
	var so searchOptions
	for _, opt := range opts {
		opt(&so)
	}
	if !so.exhaustive {
		var m Match
		_, ok := grid.Search(func(o grid.Orientation) bool {
			m = Match{Orientation: o, Count: p.Count(img.Apply(o))}
			return m.Count > 0
		})
		if !ok {
			return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, p.name)
		}
		return m, nil
	}

	var found []Match
	for _, o := range grid.Orientations {
		if n := p.Count(img.Apply(o)); n > 0 {
			found = append(found, Match{Orientation: o, Count: n})
		}
	}
	switch len(found) {
	case 0:
		return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, p.name)
	case 1:
		return found[0], nil
	default:
		return Match{}, fmt.Errorf("%w: %s found in %v and %v", ErrAmbiguous, p.name,
			found[0].Orientation, found[1].Orientation)
	}
}

// Roughness is the number of filled pixels in img minus Count×Len of the
// best orientation. Overlapping matches are subtracted in full.
func Roughness(img grid.Grid, p Pattern, opts ...SearchOption) (int, Match, error) {
	m, err := Search(img, p, opts...)
	if err != nil {
		return 0, Match{}, err
	}
	return img.Count(grid.Filled) - m.Count*p.Len(), m, nil
}
