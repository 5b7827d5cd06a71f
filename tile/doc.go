// Package tile models one square image fragment of a mosaic.
//
// A Tile owns a square pixel grid and the signature set of its edges: the
// four border strings plus their reverses. Two tiles can touch exactly when
// their signature sets intersect, whatever their current orientation, so the
// set is the key used to infer adjacency before anything is rotated.
//
// Borders are read left to right (Top, Bottom) and top to bottom (Left,
// Right), which makes the Right border of one tile equal to the Left border
// of the tile placed after it.
//
// Rotate, Flip, Orient and Adapt mutate a tile in place and recompute its
// signatures immediately.
//
// Errors:
//
//   - ErrMissingHeader: block does not start with "Tile <id>:".
//   - ErrBadID: identifier is not a positive integer.
//   - ErrNotSquare: pixel rows and columns differ in count.
//   - ErrTooSmall: tile side is below 3 (no interior).
//   - ErrDuplicateID, ErrSizeMismatch: raised by ParseAll across blocks.
//   - ErrNoOrientation: Adapt found no orientation with the requested border.
package tile
