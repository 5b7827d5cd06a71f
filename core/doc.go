// Package core provides the in-memory Graph used to record which tiles of a
// mosaic can touch each other.
//
// Graph[K] is keyed by any ordered vertex type and supports:
//
//   - Directed vs. undirected edges (WithDirected). Undirected edges are
//     mirrored into both adjacency lists.
//   - Self-loops only when enabled (WithLoops).
//   - Neighbour lists kept in discovery order, not sorted: the first edge
//     added from a vertex is the first neighbour reported for it.
//   - A single sync.RWMutex guarding vertices, edges and adjacency, so a
//     Graph may be read from several goroutines once built.
//
// Core methods:
//
//	AddVertex(id K)                    // O(1), idempotent
//	HasVertex(id K) bool               // O(1)
//	AddEdge(from, to K) error          // O(1)
//	HasEdge(from, to K) bool           // O(1)
//	NeighborIDs(id K) ([]K, error)     // O(d), discovery order
//	Degree(id K) (int, error)          // O(1)
//	Vertices() []K                     // O(V), insertion order
//	VertexCount(), EdgeCount() int     // O(1)
//
// Errors:
//
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
