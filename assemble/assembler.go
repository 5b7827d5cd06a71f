package assemble

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/adjacency"
	"github.com/katalvlaran/mosaic/bfs"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/tile"
)

// Assembler orients the tiles of one adjacency graph in place.
// It is not safe for concurrent use.
type Assembler struct {
	graph  *adjacency.Graph
	placed map[int]bool
	layout [][]int
	log    *zap.Logger
}

// New returns an Assembler over g. The tiles in g are mutated by the
// Assembler as they are placed.
func New(g *adjacency.Graph, opts ...Option) *Assembler {
	a := &Assembler{
		graph:  g,
		placed: make(map[int]bool, g.Len()),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Placed reports whether tile id already has its final orientation.
func (a *Assembler) Placed(id int) bool { return a.placed[id] }

// OrientTopLeft turns corner so that one of its neighbours matches its
// Right border and the other its Bottom border. Either pairing is accepted;
// the first orientation in grid.Orientations order wins.
func (a *Assembler) OrientTopLeft(corner int) error {
	t, err := a.graph.Lookup(corner)
	if err != nil {
		return err
	}
	nbrs := a.graph.Neighbors(corner)
	if len(nbrs) != 2 {
		return fmt.Errorf("%w: tile %d has %d neighbours", ErrNotCorner, corner, len(nbrs))
	}
	first, second := a.graph.Tile(nbrs[0]), a.graph.Tile(nbrs[1])

	o, ok := grid.Search(func(o grid.Orientation) bool {
		v := t.View(o)
		return (v.Matches(first, tile.Right) && v.Matches(second, tile.Bottom)) ||
			(v.Matches(second, tile.Right) && v.Matches(first, tile.Bottom))
	})
	if !ok {
		return fmt.Errorf("%w: tile %d", ErrNoTopLeft, corner)
	}
	t.Orient(o)
	a.placed[corner] = true
	a.log.Debug("top-left placed", zap.Int("tile", corner), zap.Stringer("orientation", o))

	return nil
}

// TopLeft tries the corners in ascending id order and returns the first one
// that OrientTopLeft accepts.
func (a *Assembler) TopLeft() (int, error) {
	corners := a.graph.Corners()
	if len(corners) == 0 {
		return 0, fmt.Errorf("%w: graph has no corners", ErrNoTopLeft)
	}
	for _, c := range corners {
		if err := a.OrientTopLeft(c); err == nil {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: tried %v", ErrNoTopLeft, corners)
}

// BuildRow extends a row rightwards from start, which must already be
// placed. It then places the tile below start. ok is false when there is
// no such tile, i.e. this was the last row.
func (a *Assembler) BuildRow(start int) (row []int, below int, ok bool, err error) {
	row = []int{start}
	for cur := start; ; {
		next, found, err := a.attach(cur, tile.Right)
		if err != nil {
			return nil, 0, false, err
		}
		if !found {
			break
		}
		row = append(row, next)
		cur = next
	}
	a.log.Debug("row built", zap.Ints("tiles", row))

	below, ok, err = a.attach(start, tile.Bottom)
	if err != nil {
		return nil, 0, false, err
	}
	return row, below, ok, nil
}

// attach finds an unplaced neighbour of cur that carries cur's border on
// side s and adapts it so that its opposite border matches exactly.
func (a *Assembler) attach(cur int, s tile.Side) (int, bool, error) {
	t, err := a.graph.Lookup(cur)
	if err != nil {
		return 0, false, err
	}
	edge := t.Border(s)
	for _, id := range a.graph.Neighbors(cur) {
		if a.placed[id] {
			continue
		}
		n := a.graph.Tile(id)
		if !n.HasSignature(edge) {
			continue
		}
		if err := n.Adapt(edge, s.Opposite()); err != nil {
			return 0, false, err
		}
		a.placed[id] = true
		return id, true, nil
	}
	return 0, false, nil
}

// Layout places every tile and returns their ids row by row. The result is
// computed once; later calls return a copy of it.
func (a *Assembler) Layout() ([][]int, error) {
	if a.layout != nil {
		return copyLayout(a.layout), nil
	}
	start, err := a.TopLeft()
	if err != nil {
		return nil, err
	}

	var layout [][]int
	for cur := start; ; {
		row, below, ok, err := a.BuildRow(cur)
		if err != nil {
			return nil, err
		}
		layout = append(layout, row)
		if !ok {
			break
		}
		cur = below
	}

	if err := a.check(start, layout); err != nil {
		return nil, err
	}
	a.layout = layout
	a.log.Debug("layout complete", zap.Int("side", len(layout)), zap.Int("tiles", a.graph.Len()))

	return copyLayout(layout), nil
}

func (a *Assembler) check(start int, layout [][]int) error {
	side := len(layout)
	placed := 0
	for r, row := range layout {
		if len(row) != side {
			return fmt.Errorf("%w: row %d has %d tiles, want %d", ErrIncompleteLayout, r, len(row), side)
		}
		placed += len(row)
	}
	if placed != a.graph.Len() {
		return fmt.Errorf("%w: placed %d of %d tiles", ErrIncompleteLayout, placed, a.graph.Len())
	}

	res, err := bfs.BFS(a.graph.Core(), start)
	if err != nil {
		return err
	}
	for r, row := range layout {
		for c, id := range row {
			if d, ok := res.Depth[id]; !ok || d != r+c {
				path, _ := res.PathTo(id)
				return fmt.Errorf("%w: tile %d at (%d,%d) is %d hops from %d via %v",
					ErrLayoutMismatch, id, r, c, d, start, path)
			}
		}
	}
	return nil
}

// Stitch joins the interiors of the tiles in layout: horizontally within
// a row, then the rows top to bottom.
func (a *Assembler) Stitch(layout [][]int) (grid.Grid, error) {
	if len(layout) == 0 {
		return nil, ErrEmptyLayout
	}
	rows := make([]grid.Grid, 0, len(layout))
	for r, ids := range layout {
		parts := make([]grid.Grid, 0, len(ids))
		for _, id := range ids {
			t, err := a.graph.Lookup(id)
			if err != nil {
				return nil, err
			}
			parts = append(parts, t.Interior())
		}
		joined, err := grid.JoinHorizontal(parts...)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		rows = append(rows, joined)
	}
	return grid.JoinVertical(rows...)
}

// Image is Layout followed by Stitch.
func (a *Assembler) Image() (grid.Grid, [][]int, error) {
	layout, err := a.Layout()
	if err != nil {
		return nil, nil, err
	}
	img, err := a.Stitch(layout)
	if err != nil {
		return nil, nil, err
	}
	return img, layout, nil
}

func copyLayout(layout [][]int) [][]int {
	out := make([][]int, len(layout))
	for i, row := range layout {
		out[i] = append([]int(nil), row...)
	}
	return out
}
