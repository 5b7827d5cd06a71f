// Package pattern finds fixed pixel shapes in an assembled image.
//
// A Pattern is a set of offsets relative to the top-left of its bounding
// box. It matches at anchor (r, c) when every offset lands inside the image
// on a filled pixel; unset cells of the bounding box are "don't care".
// Matches may overlap.
//
// The image orientation is unknown, so Search tries the eight elements of
// the symmetry group in grid.Orientations order and stops at the first one
// with any match. WithExhaustive scans all eight and rejects images where
// more than one orientation matches.
//
// Complexity: Count is O(W×H×|P|); Search is at most eight of those.
package pattern
