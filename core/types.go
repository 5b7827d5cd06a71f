package core

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*options)

type options struct {
	directed   bool
	allowLoops bool
}

// WithDirected sets whether new edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(o *options) { o.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(o *options) { o.allowLoops = true }
}

// Graph is an adjacency-list graph over vertex keys of type K.
//
// order records vertex insertion order; adjacency[v] records v's neighbours
// in the order their edges were added; edges indexes adjacency for O(1)
// membership tests.
type Graph[K cmp.Ordered] struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	order     []K
	adjacency map[K][]K
	edges     map[K]map[K]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph. By default it is undirected and rejects
// self-loops.
// Complexity: O(1).
func NewGraph[K cmp.Ordered](opts ...GraphOption) *Graph[K] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[K]{
		directed:   o.directed,
		allowLoops: o.allowLoops,
		adjacency:  make(map[K][]K),
		edges:      make(map[K]map[K]struct{}),
	}
}
