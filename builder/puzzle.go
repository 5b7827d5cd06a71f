// SPDX-License-Identifier: MIT
// Package: mosaic/builder
//
// puzzle.go — Generate and the Puzzle it returns.
//
// Steps:
//   1. Resolve and validate options; assign tile ids.
//   2. Fill the picture, draw unique borders, stamp pattern copies.
//   3. Redraw from step 2 while the pattern is ambiguous or accidental.
//   4. Cut tiles, orient each randomly, shuffle.

package builder

import (
	"errors"
	"slices"
	"strings"

	"github.com/katalvlaran/mosaic/adjacency"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/pattern"
	"github.com/katalvlaran/mosaic/tile"
)

// Puzzle is a scrambled tile set together with its known answer.
type Puzzle struct {
	// Blocks holds one "Tile <id>:" block per tile, in scrambled order.
	Blocks []string
	// Image is the stitched interior picture in the orientation the pattern
	// was stamped in.
	Image grid.Grid
	// Layout holds the tile ids as placed in the picture, row by row.
	Layout [][]int
	// Corners are the four corner ids, ascending.
	Corners []int
	// CornerProduct is the product of Corners.
	CornerProduct int64
	// Matches is the number of stamped pattern copies.
	Matches int
	// Roughness is the filled pixel count of Image minus Matches times the
	// pattern size.
	Roughness int
}

// Text renders the blocks separated by blank lines, the format the solve
// command reads.
func (p *Puzzle) Text() string {
	return strings.Join(p.Blocks, "\n\n") + "\n"
}

// Generate builds a random puzzle. See the package documentation for the
// guarantees on its output.
// Complexity: O(P²) per picture attempt with P = n(L-1)+1, plus the pattern
// checks, O(P²·|pattern|) each.
func Generate(opts ...Option) (*Puzzle, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, builderErrorf("Generate", "%w", err)
	}
	n, l := cfg.gridSize, cfg.tileSize

	ids, err := cfg.assignIDs(n * n)
	if err != nil {
		return nil, builderErrorf("Generate", "%w", err)
	}

	pic, img, err := cfg.picture()
	if err != nil {
		return nil, err
	}

	step := l - 1
	layout := make([][]int, n)
	tiles := make([]*tile.Tile, 0, n*n)
	for i := 0; i < n; i++ {
		layout[i] = make([]int, n)
		for j := 0; j < n; j++ {
			id := ids[i*n+j]
			layout[i][j] = id
			cut := make(grid.Grid, l)
			for r := 0; r < l; r++ {
				cut[r] = pic[i*step+r][j*step : j*step+l]
			}
			o := grid.Orientations[cfg.rng.Intn(len(grid.Orientations))]
			t, err := tile.New(id, cut.Apply(o))
			if err != nil {
				return nil, builderErrorf("Generate", "%w", err)
			}
			tiles = append(tiles, t)
		}
	}
	cfg.rng.Shuffle(len(tiles), func(a, b int) { tiles[a], tiles[b] = tiles[b], tiles[a] })

	blocks := make([]string, len(tiles))
	for i, t := range tiles {
		blocks[i] = t.String()
	}

	corners := []int{layout[0][0], layout[0][n-1], layout[n-1][0], layout[n-1][n-1]}
	slices.Sort(corners)
	product, err := adjacency.Product(corners)
	if err != nil {
		return nil, builderErrorf("Generate", "%w", err)
	}

	return &Puzzle{
		Blocks:        blocks,
		Image:         img,
		Layout:        layout,
		Corners:       corners,
		CornerProduct: product,
		Matches:       cfg.copies,
		Roughness:     img.Count(grid.Filled) - cfg.copies*cfg.pattern.Len(),
	}, nil
}

// picture draws the full picture and its interior image, retrying until
// the pattern occurs exactly as stamped.
func (cfg builderConfig) picture() (grid.Grid, grid.Grid, error) {
	segs := cfg.segments()
	for attempt := 0; attempt < pictureAttempts; attempt++ {
		pic := cfg.background()
		if err := drawBorders(pic, segs, cfg.rng); err != nil {
			return nil, nil, err
		}
		if err := cfg.stamp(pic); err != nil {
			return nil, nil, err
		}
		img := cfg.interior(pic)
		if cfg.exact(img) {
			return pic, img, nil
		}
	}
	return nil, nil, builderErrorf("Generate", "%w: pattern %q still ambiguous after %d pictures",
		ErrConstructFailed, cfg.pattern.Name(), pictureAttempts)
}

// background returns a picture whose pixels are filled with probability
// cfg.fill.
func (cfg builderConfig) background() grid.Grid {
	side := cfg.pictureSide()
	pic := grid.New(side, side, grid.Empty)
	for r := range pic {
		for c := range pic[r] {
			if cfg.rng.Float64() < cfg.fill {
				pic[r][c] = grid.Filled
			}
		}
	}
	return pic
}

// toPicture maps an interior image coordinate to the picture.
func (cfg builderConfig) toPicture(x int) int {
	inner := cfg.tileSize - 2
	return (x/inner)*(cfg.tileSize-1) + 1 + x%inner
}

// interior drops every shared border line of pic.
func (cfg builderConfig) interior(pic grid.Grid) grid.Grid {
	side := cfg.imageSide()
	img := make(grid.Grid, side)
	for r := range img {
		row := make([]grid.Pixel, side)
		for c := range row {
			row[c] = pic[cfg.toPicture(r)][cfg.toPicture(c)]
		}
		img[r] = row
	}
	return img
}

// stamp places cfg.copies copies of the pattern at random anchors whose
// bounding boxes do not overlap.
func (cfg builderConfig) stamp(pic grid.Grid) error {
	if cfg.copies == 0 {
		return nil
	}
	p := cfg.pattern
	side := cfg.imageSide()
	if p.Height() > side || p.Width() > side {
		return builderErrorf("stamp", "%w: %dx%d pattern in %dx%d image",
			ErrPatternDoesNotFit, p.Height(), p.Width(), side, side)
	}

	type box struct{ r, c int }
	var placed []box
	overlaps := func(r, c int) bool {
		for _, b := range placed {
			if r < b.r+p.Height() && b.r < r+p.Height() && c < b.c+p.Width() && b.c < c+p.Width() {
				return true
			}
		}
		return false
	}

	for k := 0; k < cfg.copies; k++ {
		ok := false
		for d := 0; d < placementDraws && !ok; d++ {
			r := cfg.rng.Intn(side - p.Height() + 1)
			c := cfg.rng.Intn(side - p.Width() + 1)
			if overlaps(r, c) {
				continue
			}
			placed = append(placed, box{r, c})
			ok = true
		}
		if !ok {
			return builderErrorf("stamp", "%w: placed %d of %d copies", ErrPatternDoesNotFit, k, cfg.copies)
		}
	}

	for _, b := range placed {
		for _, o := range p.Offsets() {
			pic[cfg.toPicture(b.r+o.Row)][cfg.toPicture(b.c+o.Col)] = grid.Filled
		}
	}
	return nil
}

// exact reports whether img contains the pattern in the identity
// orientation only, exactly cfg.copies times.
func (cfg builderConfig) exact(img grid.Grid) bool {
	m, err := pattern.Search(img, cfg.pattern, pattern.WithExhaustive())
	if cfg.copies == 0 {
		return errors.Is(err, pattern.ErrNoMatch)
	}
	return err == nil && m.Orientation == grid.Identity && m.Count == cfg.copies
}
