// Package assemble places the tiles of an adjacency.Graph on a square
// layout and stitches their interiors into one picture.
//
// The Assembler works in three steps:
//
//  1. TopLeft picks a corner and turns it so that its two neighbours sit on
//     its Right and Bottom sides.
//  2. BuildRow walks right from the first tile of a row, adapting each
//     neighbour so that its Left border equals the previous Right border,
//     then adapts the tile below the row start the same way using the
//     Bottom/Top pair.
//  3. Stitch drops each tile's outer ring and joins the interiors.
//
// Every tile is oriented exactly once. Once placed it is never touched
// again, which also bounds the row walk by the number of tiles.
//
// Layout cross-checks the result against a breadth-first walk of the
// adjacency graph: the tile at (row, col) must be row+col hops away from
// the top-left corner.
package assemble
