// Package mosaic reassembles a picture cut into square tiles that were
// shuffled, rotated and flipped, then measures how much of it is not
// covered by a known pattern.
//
// What is mosaic?
//
//	An in-memory engine that takes "Tile <id>:" blocks and answers two
//	questions:
//		• the product of the four corner tile ids, found from edge
//		  content alone, before anything is rotated;
//		• the "roughness" of the assembled picture: filled pixels not
//		  covered by any occurrence of the pattern (the sea monster by
//		  default).
//
// Under the hood the work is split into subpackages:
//
//	grid/      — pixel grids and the 8-element symmetry group
//	tile/      — tiles, border signatures, in-place orientation
//	core/      — generic adjacency graph
//	bfs/       — breadth-first traversal over core graphs
//	adjacency/ — neighbour inference and corner detection
//	assemble/  — top-left choice, row building, stitching
//	pattern/   — pattern search over the eight orientations
//	builder/   — seeded generator of scrambled puzzles with known answers
//
// Solve wires them together:
//
//	blocks → tile.ParseAll → adjacency.Build → Validate → CornerProduct
//	       → assemble.Image → pattern.Roughness
//
// A run is single-threaded and deterministic: the same multiset of blocks,
// in any order, yields the same two numbers.
package mosaic
