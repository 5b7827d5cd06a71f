// Package adjacency infers which tiles touch each other from edge content
// alone and answers the corner questions that follow from it.
//
// Build tests every ordered pair of tiles with tile.IsNeighbor and records
// the hits in a directed core.Graph[int], so each direction is stored on
// its own and neighbour lists keep discovery order. In a square
// arrangement corners have exactly two neighbours, edge tiles three and
// interior tiles four; Validate checks that histogram and connectivity
// before any tile is rotated.
//
// Complexity: Build is O(n²) pair tests with O(1) amortized work each.
package adjacency
