// Package builder generates scrambled tile puzzles with a known answer.
//
// A puzzle starts as one random picture of side n(L-1)+1 pixels, where n is
// the number of tiles per side and L the tile size. Neighbouring tiles
// overlap by exactly one pixel line, so a border is literally shared:
// tile (i, j)'s Right column is tile (i, j+1)'s Left column.
//
// Guarantees:
//
//   - Every border segment, read in either direction, occurs in exactly one
//     tile pair (or one tile, on the outer rim), and no segment is a
//     palindrome. Neighbour inference on the output is therefore exact.
//   - Requested pattern copies are stamped into the interior picture without
//     overlapping, and the picture is redrawn until the pattern is found in
//     exactly one orientation with exactly the requested count.
//   - Tiles receive distinct positive ids, a random orientation and a random
//     position in the output.
//   - The same seed and options always yield the same Puzzle.
//
// The package offers the following key components:
//
//   - Generate:        builds a Puzzle from functional options.
//   - Option:          WithSeed, WithRand, WithTileSize, WithGridSize,
//     WithFillRatio, WithPattern, WithIDScheme.
//   - IDFn schemes:    SequentialIDFn; the default draws random 4-digit ids.
//   - Sentinel errors: ErrTooFewTiles, ErrTileTooSmall, ErrInvalidProbability,
//     ErrBorderExhausted, ErrPatternDoesNotFit, ErrConstructFailed,
//     ErrOptionViolation.
//
// Option constructors panic on programmer errors (nil functions, nil RNG).
// Size and probability checks happen in Generate and surface as errors.
package builder
