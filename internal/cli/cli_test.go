package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mosaic/internal/config"
	"github.com/katalvlaran/mosaic/internal/sample"
	"github.com/katalvlaran/mosaic/tile"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--config-dir", t.TempDir(), "--log-level", "error"))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSolve_File(t *testing.T) {
	path := writeFile(t, "input.txt", sample.Text())
	out, _, err := run(t, "", "solve", path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n%d\n", sample.CornerProduct, sample.Roughness), out)
}

func TestSolve_StdinJSON(t *testing.T) {
	out, _, err := run(t, sample.Text(), "solve", "--format", config.OutputJSON, "--exhaustive")
	require.NoError(t, err)

	var rep report
	require.NoError(t, sonic.Unmarshal([]byte(out), &rep))
	assert.Equal(t, sample.CornerProduct, rep.CornerProduct)
	assert.Equal(t, sample.Roughness, rep.Roughness)
	assert.Equal(t, sample.Monsters, rep.Matches)
	assert.Equal(t, "rot180", rep.Orientation)
	assert.Equal(t, 9, rep.Tiles)
	assert.Equal(t, 3, rep.Side)
	assert.Len(t, rep.RunID, 36)
}

func TestSolve_InputFromEnv(t *testing.T) {
	t.Setenv("MOSAIC_PUZZLE_INPUT", writeFile(t, "input.txt", sample.Text()))
	out, _, err := run(t, "", "solve", "--validate=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, fmt.Sprint(sample.CornerProduct)))
}

func TestSolve_PatternFile(t *testing.T) {
	// The sea monster drawn with dots: parsing ignores everything but '#'.
	art := "..................#.\n#....##....##....###\n.#..#..#..#..#..#...\n"
	pat := writeFile(t, "monster.txt", art)
	input := writeFile(t, "input.txt", sample.Text())

	out, _, err := run(t, "", "solve", input, "--pattern", pat)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n%d\n", sample.CornerProduct, sample.Roughness), out)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "hello\n", "solve")
	assert.ErrorIs(t, err, tile.ErrMissingHeader)

	_, _, err = run(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, sample.Text(), "solve", "--format", "yaml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "", "solve", "a", "b")
	assert.Error(t, err)
}

func TestGenerate_RoundTrip(t *testing.T) {
	puzzle, answer, err := run(t, "", "generate", "--seed", "42", "--grid", "4", "--copies", "3", "--answer")
	require.NoError(t, err)
	assert.Equal(t, 16, strings.Count(puzzle, "Tile "))

	var seed, product int64
	var roughness int
	_, err = fmt.Sscanf(answer, "seed: %d\ncorner product: %d\nroughness: %d\n", &seed, &product, &roughness)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seed)

	out, _, err := run(t, puzzle, "solve")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n%d\n", product, roughness), out)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _, err := run(t, "", "generate", "--seed", "5")
	require.NoError(t, err)
	b, _, err := run(t, "", "generate", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "", "generate", "--grid", "1")
	assert.Error(t, err)

	_, _, err = run(t, "", "generate", "extra")
	assert.Error(t, err)
}
