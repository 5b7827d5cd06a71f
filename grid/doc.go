// Package grid holds rectangular pixel images and the eight symmetries of
// the square that the rest of mosaic searches over.
//
// What:
//
//   - Grid is a row-major [][]Pixel with Filled ('#') and Empty ('.') cells.
//   - Rotate, Flip and Apply return fresh grids; a Grid is never mutated by
//     its own methods.
//   - Orientations enumerates the dihedral group in one fixed order:
//     the four rotations first, then the same four after a flip.
//   - Search walks Orientations and stops at the first element accepted by a
//     predicate. Tiles, the top-left solver and the pattern scan all use it.
//
// Complexity:
//
//   - Rotate, Flip, Apply, Count, Interior: O(W×H) time and memory.
//   - JoinHorizontal, JoinVertical:        O(total cells).
//   - Search:                              at most 8 predicate calls.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidSymbol: a cell is neither '#' nor '.'.
//   - ErrTooSmall: Interior on a grid smaller than 3×3.
//   - ErrDimensionMismatch: joined grids disagree on height or width.
package grid
