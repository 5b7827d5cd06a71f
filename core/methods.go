package core

// AddVertex inserts id. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
}

func (g *Graph[K]) addVertexLocked(id K) {
	if _, ok := g.edges[id]; ok {
		return
	}
	g.order = append(g.order, id)
	g.edges[id] = make(map[K]struct{})
	g.adjacency[id] = nil
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// AddEdge connects from to to, creating missing endpoints. Undirected
// graphs also record to→from. Returns ErrLoopNotAllowed or
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K) error {
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, dup := g.edges[from][to]; dup {
		return ErrMultiEdgeNotAllowed
	}
	g.link(from, to)
	if !g.directed && from != to {
		g.link(to, from)
	}
	g.edgeCount++

	return nil
}

func (g *Graph[K]) link(from, to K) {
	g.edges[from][to] = struct{}{}
	g.adjacency[from] = append(g.adjacency[from], to)
}

// HasEdge reports whether an edge from→to exists (either direction for
// undirected graphs).
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[from][to]

	return ok
}

// NeighborIDs returns the vertices reachable from id over one edge, in the
// order the edges were added. The slice is a copy.
// Complexity: O(d).
func (g *Graph[K]) NeighborIDs(id K) ([]K, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.edges[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return append([]K(nil), g.adjacency[id]...), nil
}

// Degree returns the number of neighbours of id (out-degree when directed).
// Complexity: O(1).
func (g *Graph[K]) Degree(id K) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.edges[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}

// Vertices returns every vertex in insertion order.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]K(nil), g.order...)
}

// VertexCount returns the number of vertices.
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of AddEdge calls that succeeded; an
// undirected edge counts once.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Directed reports whether new edges are one-way.
func (g *Graph[K]) Directed() bool {
	return g.directed
}
