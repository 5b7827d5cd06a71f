// SPDX-License-Identifier: MIT
// Package: mosaic/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w by builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewTiles indicates a grid size below MinGridSize.
var ErrTooFewTiles = errors.New("builder: too few tiles per side")

// ErrTileTooSmall indicates a tile size below MinTileSize.
var ErrTileTooSmall = errors.New("builder: tile size too small")

// ErrInvalidProbability indicates a fill ratio outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrBorderExhausted indicates that no unused, non-palindromic border could
// be drawn for some segment. Larger tiles or fewer tiles help.
var ErrBorderExhausted = errors.New("builder: no unique border left")

// ErrPatternDoesNotFit indicates the requested pattern copies cannot be
// placed without overlap inside the interior picture.
var ErrPatternDoesNotFit = errors.New("builder: pattern does not fit")

// ErrConstructFailed indicates every picture redraw still produced an
// ambiguous or accidental pattern occurrence.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates option values that are only checked when
// Generate resolves them, such as negative copy counts or an IDFn yielding
// duplicate or non-positive ids.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes err with the generation step it came from while
// keeping it matchable with errors.Is.
func builderErrorf(step, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", step, fmt.Errorf(format, args...))
}
