package adjacency

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/mosaic/bfs"
	"github.com/katalvlaran/mosaic/core"
	"github.com/katalvlaran/mosaic/tile"
)

// Graph maps every tile id to the tiles it can touch.
// It owns the tiles for the duration of a run.
type Graph struct {
	tiles map[int]*tile.Tile
	order []int
	g     *core.Graph[int]
}

// Build evaluates IsNeighbor for every ordered pair (i, j), i != j, and
// appends j to i's neighbour list on a hit.
// Complexity: O(n²).
func Build(tiles []*tile.Tile) (*Graph, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	ag := &Graph{
		tiles: make(map[int]*tile.Tile, len(tiles)),
		order: make([]int, 0, len(tiles)),
		g:     core.NewGraph[int](core.WithDirected(true)),
	}
	for _, t := range tiles {
		ag.tiles[t.ID] = t
		ag.order = append(ag.order, t.ID)
		ag.g.AddVertex(t.ID)
	}
	for _, a := range tiles {
		for _, b := range tiles {
			if !a.IsNeighbor(b) {
				continue
			}
			if err := ag.g.AddEdge(a.ID, b.ID); err != nil {
				return nil, fmt.Errorf("adjacency: link %d -> %d: %w", a.ID, b.ID, err)
			}
		}
	}

	return ag, nil
}

// Len is the number of tiles.
func (ag *Graph) Len() int { return len(ag.order) }

// IDs returns tile ids in input order.
func (ag *Graph) IDs() []int { return append([]int(nil), ag.order...) }

// Tile returns the tile with the given id, or nil.
func (ag *Graph) Tile(id int) *tile.Tile { return ag.tiles[id] }

// Lookup is Tile with an ErrUnknownTile error for missing ids.
func (ag *Graph) Lookup(id int) (*tile.Tile, error) {
	t, ok := ag.tiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	return t, nil
}

// Tiles returns the tiles in input order.
func (ag *Graph) Tiles() []*tile.Tile {
	out := make([]*tile.Tile, 0, len(ag.order))
	for _, id := range ag.order {
		out = append(out, ag.tiles[id])
	}
	return out
}

// Neighbors returns id's neighbours in discovery order.
func (ag *Graph) Neighbors(id int) []int {
	ids, err := ag.g.NeighborIDs(id)
	if err != nil {
		return nil
	}
	return ids
}

// Degree returns the number of neighbours of id, or -1 for unknown ids.
func (ag *Graph) Degree(id int) int {
	d, err := ag.g.Degree(id)
	if err != nil {
		return -1
	}
	return d
}

// Corners returns the ids with exactly two neighbours, ascending.
func (ag *Graph) Corners() []int {
	var out []int
	for _, id := range ag.order {
		if ag.Degree(id) == 2 {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// CornerProduct multiplies the ids of the four corner tiles. Corners of a
// rectangular tiling are exactly the degree-2 vertices, so no placement is
// needed. Returns ErrCornerCount unless there are exactly four.
func (ag *Graph) CornerProduct() (int64, error) {
	corners := ag.Corners()
	if len(corners) != 4 {
		return 0, fmt.Errorf("%w: found %d %v", ErrCornerCount, len(corners), corners)
	}
	return Product(corners)
}

// Product multiplies ids in int64. Returns ErrProductOverflow instead of a
// wrapped-around value.
func Product(ids []int) (int64, error) {
	product := int64(1)
	for _, id := range ids {
		if id <= 0 {
			return 0, fmt.Errorf("%w: non-positive id %d", ErrUnknownTile, id)
		}
		if product > math.MaxInt64/int64(id) {
			return 0, fmt.Errorf("%w: %v", ErrProductOverflow, ids)
		}
		product *= int64(id)
	}
	return product, nil
}

// Side returns the number of tiles along one edge when the tile count is a
// perfect square, or 0.
func (ag *Graph) Side() int {
	n := ag.Len()
	s := 0
	for s*s < n {
		s++
	}
	if s*s != n {
		return 0
	}
	return s
}

// Validate checks that the graph can describe a square of side s >= 2:
// n == s², every tile reachable from the first, and exactly 4 corners,
// 4(s-2) edge tiles and (s-2)² interior tiles.
func (ag *Graph) Validate() error {
	s := ag.Side()
	if s < 2 {
		return fmt.Errorf("%w: %d tiles", ErrNotSquare, ag.Len())
	}

	res, err := bfs.BFS(ag.g, ag.order[0])
	if err != nil {
		return fmt.Errorf("adjacency: walk from %d: %w", ag.order[0], err)
	}
	if len(res.Order) != ag.Len() {
		var missing []int
		for _, id := range ag.order {
			if !res.Reached(id) {
				missing = append(missing, id)
			}
		}
		return fmt.Errorf("%w: %d of %d tiles unreachable from %d: %v",
			ErrDisconnected, len(missing), ag.Len(), ag.order[0], missing)
	}

	hist := ag.DegreeHistogram()
	want := map[int]int{2: 4, 3: 4 * (s - 2), 4: (s - 2) * (s - 2)}
	for d, n := range hist {
		if want[d] != n {
			return fmt.Errorf("%w: %d tiles with %d neighbours, want %d", ErrDegreeMismatch, n, d, want[d])
		}
	}
	for d, n := range want {
		if n > 0 && hist[d] != n {
			return fmt.Errorf("%w: %d tiles with %d neighbours, want %d", ErrDegreeMismatch, hist[d], d, n)
		}
	}

	return nil
}

// DegreeHistogram counts tiles per neighbour count.
func (ag *Graph) DegreeHistogram() map[int]int {
	hist := make(map[int]int, 3)
	for _, id := range ag.order {
		hist[ag.Degree(id)]++
	}
	return hist
}

// Core exposes the underlying graph for traversal.
func (ag *Graph) Core() *core.Graph[int] { return ag.g }
