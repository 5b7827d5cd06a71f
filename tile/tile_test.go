package tile

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/internal/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleTiles parses the reference puzzle and indexes it by id.
func sampleTiles(t *testing.T) map[int]*Tile {
	t.Helper()
	tiles, err := ParseAll(sample.Blocks())
	require.NoError(t, err)
	byID := make(map[int]*Tile, len(tiles))
	for _, tl := range tiles {
		byID[tl.ID] = tl
	}
	return byID
}

func TestParse_Sample(t *testing.T) {
	tiles := sampleTiles(t)
	require.Len(t, tiles, 9)

	tl := tiles[1951]
	assert.Equal(t, sample.TileSize, tl.Size())
	assert.Equal(t, "#.##...##.", tl.Border(Top))
	assert.Equal(t, ".#####..#.", tl.Border(Right))
	assert.Equal(t, "#...##.#..", tl.Border(Bottom))
	assert.Equal(t, "##.#..#..#", tl.Border(Left))
	assert.Len(t, tl.Signatures(), 8)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		block string
		want  error
	}{
		{"no header", "#.#\n...\n#.#", ErrMissingHeader},
		{"bad id", "Tile x1:\n#.#\n...\n#.#", ErrBadID},
		{"zero id", "Tile 0:\n#.#\n...\n#.#", ErrBadID},
		{"not square", "Tile 7:\n#.#\n...", ErrNotSquare},
		{"too small", "Tile 7:\n#.\n..", ErrTooSmall},
		{"bad symbol", "Tile 7:\n#.#\n.o.\n#.#", grid.ErrInvalidSymbol},
		{"ragged", "Tile 7:\n#.#\n..\n#.#", grid.ErrNonRectangular},
		{"no pixels", "Tile 7:", grid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.block)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ToleratesCRLF(t *testing.T) {
	tl, err := Parse("\nTile 42:\r\n#.#\r\n...\r\n##.\r\n")
	require.NoError(t, err)
	assert.Equal(t, 42, tl.ID)
	assert.Equal(t, "##.", tl.Border(Bottom))
}

func TestParseAll_Errors(t *testing.T) {
	_, err := ParseAll([]string{"Tile 1:\n#.#\n...\n#.#", "", "Tile 1:\n###\n...\n###"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = ParseAll([]string{"Tile 1:\n#.#\n...\n#.#", "Tile 2:\n#..#\n....\n....\n#..#"})
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = ParseAll([]string{"Tile 1:\n#.#\n...\n#.#", "Tile 2:\n#..\n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block 1")
}

func TestString_RoundTrip(t *testing.T) {
	for _, tl := range sampleTiles(t) {
		again, err := Parse(tl.String())
		require.NoError(t, err)
		assert.Equal(t, tl.ID, again.ID)
		assert.True(t, tl.Pixels().Equal(again.Pixels()))
	}
}

func TestRotate_FourTimesRestores(t *testing.T) {
	for id, tl := range sampleTiles(t) {
		before := tl.Pixels()
		for i := 0; i < 4; i++ {
			tl.Rotate()
		}
		assert.True(t, before.Equal(tl.Pixels()), "tile %d", id)
	}
}

func TestFlip_TwiceRestores(t *testing.T) {
	for id, tl := range sampleTiles(t) {
		before := tl.Pixels()
		tl.Flip()
		assert.False(t, before.Equal(tl.Pixels()), "tile %d", id)
		tl.Flip()
		assert.True(t, before.Equal(tl.Pixels()), "tile %d", id)
	}
}

// TestSignatures_InvariantUnderSymmetry checks that the signature set does
// not depend on orientation, which is what lets adjacency be inferred
// before any tile is placed.
func TestSignatures_InvariantUnderSymmetry(t *testing.T) {
	tl := sampleTiles(t)[2311]
	want := tl.Signatures()
	for _, o := range grid.Orientations {
		tl.Orient(o)
		assert.Equal(t, want, tl.Signatures(), "orientation %v", o)
	}
}

func TestIsNeighbor_Symmetric(t *testing.T) {
	tiles := sampleTiles(t)
	for _, a := range tiles {
		assert.False(t, a.IsNeighbor(a))
		for _, b := range tiles {
			assert.Equal(t, a.IsNeighbor(b), b.IsNeighbor(a), "%d/%d", a.ID, b.ID)
		}
	}
	assert.True(t, tiles[1951].IsNeighbor(tiles[2311]))
	assert.True(t, tiles[1951].IsNeighbor(tiles[2729]))
	assert.False(t, tiles[1951].IsNeighbor(tiles[1171]))
}

func TestIsNeighbor_ReorientedStillMatches(t *testing.T) {
	tiles := sampleTiles(t)
	a, b := tiles[1427], tiles[2473]
	b.Flip()
	b.Rotate()
	assert.True(t, a.IsNeighbor(b))
}

// TestSignatures_Palindromic covers the degenerate case where every border
// reads the same both ways and the signature set collapses.
func TestSignatures_Palindromic(t *testing.T) {
	a, err := Parse("Tile 1:\n#.#\n...\n#.#")
	require.NoError(t, err)
	assert.Equal(t, []string{"#.#"}, a.Signatures())

	b, err := Parse("Tile 2:\n#.#\n.#.\n#.#")
	require.NoError(t, err)
	c, err := Parse("Tile 3:\n###\n..#\n###")
	require.NoError(t, err)
	d, err := Parse("Tile 4:\n...\n.#.\n...")
	require.NoError(t, err)

	assert.Len(t, c.Signatures(), 2)
	assert.True(t, a.IsNeighbor(b))
	assert.True(t, a.IsNeighbor(c))
	assert.False(t, a.IsNeighbor(d))
	assert.Equal(t, a.IsNeighbor(c), c.IsNeighbor(a))
}

func TestMatches(t *testing.T) {
	tiles := sampleTiles(t)
	assert.True(t, tiles[1951].Matches(tiles[2311], Right))
	assert.False(t, tiles[1951].Matches(tiles[2311], Top))
}

func TestView_Detached(t *testing.T) {
	tl := sampleTiles(t)[1951]
	before := tl.Pixels()

	v := tl.View(grid.Orientation{Turns: 1})
	assert.Equal(t, tl.ID, v.ID)
	assert.Equal(t, reverse(tl.Border(Left)), v.Border(Top))
	assert.Equal(t, tl.Signatures(), v.Signatures())
	assert.True(t, before.Equal(tl.Pixels()))
}

func TestAdapt_AllStartingOrientations(t *testing.T) {
	tiles := sampleTiles(t)
	target := tiles[1951].Border(Right)
	for _, o := range grid.Orientations {
		n, err := New(2311, tiles[2311].Pixels().Apply(o))
		require.NoError(t, err)
		require.NoError(t, n.Adapt(target, Left), "start %v", o)
		assert.Equal(t, target, n.Border(Left))
		assert.True(t, n.Pixels().Equal(tiles[2311].Pixels()), "start %v", o)
	}
}

func TestAdapt_Reversed(t *testing.T) {
	tl := sampleTiles(t)[1489]
	target := reverse(tl.Border(Bottom))
	require.NoError(t, tl.Adapt(target, Top))
	assert.Equal(t, target, tl.Border(Top))
}

func TestAdapt_NoOrientation(t *testing.T) {
	tl := sampleTiles(t)[3079]
	before := tl.Pixels()
	target := "#........."
	require.False(t, tl.HasSignature(target))

	err := tl.Adapt(target, Left)
	require.ErrorIs(t, err, ErrNoOrientation)
	assert.Contains(t, err.Error(), "3079")
	assert.True(t, before.Equal(tl.Pixels()))
}

func TestInterior(t *testing.T) {
	tl := sampleTiles(t)[2311]
	in := tl.Interior()
	assert.Equal(t, 8, in.Height())
	assert.Equal(t, 8, in.Width())
	assert.Equal(t, "#..#....", in.Row(0))
}

func TestSide(t *testing.T) {
	assert.Equal(t, Bottom, Top.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, "left", Left.String())
	assert.True(t, strings.HasPrefix(Side(9).String(), "unknown"))
}
