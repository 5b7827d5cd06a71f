package bfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/mosaic/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K cmp.Ordered] struct {
	graph   *core.Graph[K]
	opts    Options[K]
	queue   []queueItem[K]
	visited map[K]bool
	res     *Result[K]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error (wrapped).
func BFS[K cmp.Ordered](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[K]{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem[K], 0, n),
		visited: make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}
	w.enqueue(start, 0, start, false)

	return w.res, w.loop()
}

func (w *walker[K]) enqueue(id K, d int, parent K, hasParent bool) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if hasParent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
		}

		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %v: %w", item.id, err)
		}
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range neighbors {
			if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			w.enqueue(nbr, next, item.id, true)
		}
	}
	return nil
}
