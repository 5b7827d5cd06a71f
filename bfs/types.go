package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the walk never reached.
	ErrNoPath = errors.New("bfs: no path to vertex")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K comparable] struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor K) bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a
// no-op visit hook.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		OnVisit:        func(K, int) error { return nil },
		FilterNeighbor: func(_, _ K) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) of every reached vertex from the start.
//   - Parent: predecessor of every reached vertex except the start.
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// Reached reports whether id was visited.
func (r *Result[K]) Reached(id K) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the path from the start vertex to dest.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
