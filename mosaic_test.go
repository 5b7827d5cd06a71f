package mosaic

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/mosaic/adjacency"
	"github.com/katalvlaran/mosaic/builder"
	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/internal/sample"
	"github.com/katalvlaran/mosaic/pattern"
	"github.com/katalvlaran/mosaic/tile"
)

func TestSolve_Sample(t *testing.T) {
	res, err := Solve(sample.Blocks())
	require.NoError(t, err)
	assert.Equal(t, sample.CornerProduct, res.CornerProduct)
	assert.Equal(t, sample.Roughness, res.Roughness)
	assert.Equal(t, sample.Monsters, res.Matches)
	assert.Equal(t, 9, res.Tiles)
	assert.Equal(t, 3, res.Side)
	assert.Equal(t, grid.Orientation{Turns: 2}, res.Orientation)
	assert.Equal(t, []int{1171, 2473, 3079}, res.Layout[0])
}

func TestSolve_SampleOptions(t *testing.T) {
	res, err := Solve(sample.Blocks(), WithExhaustiveSearch(), WithoutValidation())
	require.NoError(t, err)
	assert.Equal(t, sample.CornerProduct, res.CornerProduct)
	assert.Equal(t, sample.Roughness, res.Roughness)
}

// reshuffle returns blocks in a random order with every tile in a random
// orientation.
func reshuffle(t *testing.T, blocks []string, rng *rand.Rand) []string {
	t.Helper()
	tiles, err := tile.ParseAll(blocks)
	require.NoError(t, err)
	out := make([]string, len(tiles))
	for i, tl := range tiles {
		tl.Orient(grid.Orientations[rng.Intn(len(grid.Orientations))])
		out[i] = tl.String()
	}
	rng.Shuffle(len(out), func(a, b int) { out[a], out[b] = out[b], out[a] })
	return out
}

func TestSolve_IndependentOfOrderAndOrientation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		res, err := Solve(reshuffle(t, sample.Blocks(), rng))
		require.NoError(t, err, "round %d", i)
		assert.Equal(t, sample.CornerProduct, res.CornerProduct, "round %d", i)
		assert.Equal(t, sample.Roughness, res.Roughness, "round %d", i)
		assert.Equal(t, sample.Monsters, res.Matches, "round %d", i)
	}
}

func TestSolve_Generated(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.Option
	}{
		{"default", nil},
		{"4x4", []builder.Option{builder.WithSeed(11), builder.WithGridSize(4), builder.WithPattern(pattern.SeaMonster(), 3)}},
		{"large tiles", []builder.Option{builder.WithSeed(12), builder.WithGridSize(2), builder.WithTileSize(14), builder.WithPattern(pattern.SeaMonster(), 1)}},
		{"12x12", []builder.Option{builder.WithSeed(13), builder.WithGridSize(12), builder.WithTileSize(12), builder.WithPattern(pattern.SeaMonster(), 6)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := builder.Generate(tc.opts...)
			require.NoError(t, err)

			res, err := Solve(p.Blocks, WithExhaustiveSearch())
			require.NoError(t, err)
			assert.Equal(t, p.CornerProduct, res.CornerProduct)
			assert.Equal(t, p.Roughness, res.Roughness)
			assert.Equal(t, p.Matches, res.Matches)
			assert.Equal(t, len(p.Layout), res.Side)

			corners := []int{res.Layout[0][0], res.Layout[0][res.Side-1], res.Layout[res.Side-1][0], res.Layout[res.Side-1][res.Side-1]}
			assert.ElementsMatch(t, p.Corners, corners)
		})
	}
}

func TestSolve_CustomPattern(t *testing.T) {
	hook := pattern.MustParse("hook", "#.", ".#", "##")
	p, err := builder.Generate(builder.WithSeed(4), builder.WithFillRatio(0.1), builder.WithPattern(hook, 3))
	require.NoError(t, err)

	res, err := Solve(p.Blocks, WithPattern(hook))
	require.NoError(t, err)
	assert.Equal(t, p.Roughness, res.Roughness)
	assert.Equal(t, 3, res.Matches)
}

func TestSolve_Errors(t *testing.T) {
	_, err := Solve(nil)
	assert.ErrorIs(t, err, adjacency.ErrNoTiles)

	_, err = Solve([]string{"Tile x:\n#."})
	assert.ErrorIs(t, err, tile.ErrBadID)

	_, err = Solve(sample.Blocks()[:3])
	assert.ErrorIs(t, err, adjacency.ErrNotSquare)

	// Eight-digit ids: the four corners multiply past int64.
	wide := make([]string, 0, len(sample.Blocks()))
	for _, b := range sample.Blocks() {
		wide = append(wide, strings.Replace(b, "Tile ", "Tile 1000", 1))
	}
	_, err = Solve(wide)
	assert.ErrorIs(t, err, adjacency.ErrProductOverflow)

	none, err := builder.Generate(builder.WithSeed(2), builder.WithPattern(pattern.SeaMonster(), 0))
	require.NoError(t, err)
	_, err = Solve(none.Blocks)
	assert.ErrorIs(t, err, pattern.ErrNoMatch)
}

func TestSolve_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := Solve(sample.Blocks(), WithLogger(zap.New(core)))
	require.NoError(t, err)

	corners := logs.FilterMessage("corners found").All()
	require.Len(t, corners, 1)
	assert.Equal(t, sample.CornerProduct, corners[0].ContextMap()["product"])

	found := logs.FilterMessage("pattern found").All()
	require.Len(t, found, 1)
	assert.EqualValues(t, sample.Monsters, found[0].ContextMap()["matches"])
	assert.Equal(t, "rot180", found[0].ContextMap()["orientation"])
}

func TestSplitBlocks(t *testing.T) {
	text := "\r\nTile 1:\r\n#.\r\n.#\r\n\r\n\r\n  \nTile 2:\n##\n..\n"
	blocks := SplitBlocks(text)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Tile 1:\n#.\n.#", blocks[0])
	assert.Equal(t, "Tile 2:\n##\n..", blocks[1])

	assert.Empty(t, SplitBlocks(" \n\n"))
	assert.Equal(t, sample.Blocks(), SplitBlocks(sample.Text()))
	assert.Len(t, SplitBlocks(strings.ReplaceAll(sample.Text(), "\n", "\r\n")), 9)
}
