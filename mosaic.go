package mosaic

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/mosaic/adjacency"
	"github.com/katalvlaran/mosaic/assemble"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/pattern"
	"github.com/katalvlaran/mosaic/tile"
)

// Result carries both answers and what was learned on the way.
type Result struct {
	// CornerProduct is the product of the four corner tile ids.
	CornerProduct int64
	// Roughness is the filled pixel count minus the pixels of every match.
	Roughness int
	// Matches is the number of pattern occurrences.
	Matches int
	// Orientation is the one in which the assembled image shows the pattern.
	Orientation grid.Orientation
	// Tiles is the number of tiles read.
	Tiles int
	// Side is the number of tiles per side of the layout.
	Side int
	// Layout holds the placed tile ids, row by row.
	Layout [][]int
}

// Solve runs the whole pipeline over the given blocks. Blank blocks are
// skipped. Errors wrap the sentinel of the stage that failed.
func Solve(blocks []string, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log

	tiles, err := tile.ParseAll(blocks)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	g, err := adjacency.Build(tiles)
	if err != nil {
		return nil, fmt.Errorf("adjacency: %w", err)
	}
	log.Debug("adjacency built", zap.Int("tiles", g.Len()), zap.Any("degrees", g.DegreeHistogram()))

	if o.validate {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("validate: %w", err)
		}
	}
	product, err := g.CornerProduct()
	if err != nil {
		return nil, fmt.Errorf("corners: %w", err)
	}
	log.Debug("corners found", zap.Ints("corners", g.Corners()), zap.Int64("product", product))

	img, layout, err := assemble.New(g, assemble.WithLogger(log)).Image()
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	var sopts []pattern.SearchOption
	if o.exhaustive {
		sopts = append(sopts, pattern.WithExhaustive())
	}
	rough, m, err := pattern.Roughness(img, o.pattern, sopts...)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	log.Debug("pattern found",
		zap.String("pattern", o.pattern.Name()),
		zap.Stringer("orientation", m.Orientation),
		zap.Int("matches", m.Count),
		zap.Int("roughness", rough),
	)

	return &Result{
		CornerProduct: product,
		Roughness:     rough,
		Matches:       m.Count,
		Orientation:   m.Orientation,
		Tiles:         g.Len(),
		Side:          len(layout),
		Layout:        layout,
	}, nil
}

// SplitBlocks cuts puzzle text into tile blocks at blank lines. Runs of
// blank lines, surrounding whitespace and CRLF line endings are tolerated.
func SplitBlocks(text string) []string {
	var (
		blocks []string
		cur    []string
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}
