// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing Order, Depth and Parent.
//   - OnVisit hook may abort the walk with an error.
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds the walk.
//
// Determinism
//
//	core.Graph reports neighbours in discovery order and BFS enqueues them in
//	that order, so the visit sequence is reproducible for a given graph.
//
// In mosaic the walk answers two questions about the tile graph: is it
// connected, and is every tile as many hops from the top-left tile as its
// row plus column in the assembled layout.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
