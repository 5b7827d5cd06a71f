package tile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/mosaic/grid"
)

const headerPrefix = "Tile "

// Tile is one square fragment of the picture.
type Tile struct {
	ID int

	pixels     grid.Grid
	signatures map[string]struct{}
}

// New wraps pixels as tile id. The grid must be square with side >= 3.
// The grid is copied.
func New(id int, pixels grid.Grid) (*Tile, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadID, id)
	}
	if pixels.Height() != pixels.Width() {
		return nil, fmt.Errorf("tile %d: %w: %dx%d", id, ErrNotSquare, pixels.Height(), pixels.Width())
	}
	if pixels.Height() < 3 {
		return nil, fmt.Errorf("tile %d: %w: got %d", id, ErrTooSmall, pixels.Height())
	}
	t := &Tile{ID: id, pixels: pixels.Clone()}
	t.refresh()

	return t, nil
}

// Parse reads one block: a "Tile <id>:" header followed by the pixel rows.
// Surrounding blank lines and trailing carriage returns are ignored.
func Parse(block string) (*Tile, error) {
	raw := strings.Split(strings.TrimSpace(block), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimSpace(l))
	}
	if len(lines) == 0 || !strings.HasPrefix(lines[0], headerPrefix) || !strings.HasSuffix(lines[0], ":") {
		return nil, fmt.Errorf("%w: got %q", ErrMissingHeader, lines[0])
	}
	idText := strings.TrimSuffix(strings.TrimPrefix(lines[0], headerPrefix), ":")
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadID, idText)
	}
	pixels, err := grid.Parse(lines[1:])
	if err != nil {
		return nil, fmt.Errorf("tile %d: %w", id, err)
	}

	return New(id, pixels)
}

// ParseAll parses every non-blank block. All tiles must have distinct ids
// and the same side length.
func ParseAll(blocks []string) ([]*Tile, error) {
	tiles := make([]*Tile, 0, len(blocks))
	seen := make(map[int]struct{}, len(blocks))
	for i, b := range blocks {
		if strings.TrimSpace(b) == "" {
			continue
		}
		t, err := Parse(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("block %d: %w: %d", i, ErrDuplicateID, t.ID)
		}
		if len(tiles) > 0 && t.Size() != tiles[0].Size() {
			return nil, fmt.Errorf("block %d: %w: tile %d is %d, tile %d is %d",
				i, ErrSizeMismatch, t.ID, t.Size(), tiles[0].ID, tiles[0].Size())
		}
		seen[t.ID] = struct{}{}
		tiles = append(tiles, t)
	}

	return tiles, nil
}

// Size is the side length L.
func (t *Tile) Size() int { return t.pixels.Height() }

// Pixels returns a copy of the grid in its current orientation.
func (t *Tile) Pixels() grid.Grid { return t.pixels.Clone() }

// Border returns the symbols along side s in the current orientation.
// Complexity: O(L).
func (t *Tile) Border(s Side) string {
	return border(t.pixels, s)
}

func border(g grid.Grid, s Side) string {
	switch s {
	case Top:
		return g.Row(0)
	case Bottom:
		return g.Row(g.Height() - 1)
	case Left:
		return g.Column(0)
	default:
		return g.Column(g.Width() - 1)
	}
}

// refresh recomputes the signature set from the current pixels.
func (t *Tile) refresh() {
	sigs := make(map[string]struct{}, 8)
	for _, s := range Sides {
		b := t.Border(s)
		sigs[b] = struct{}{}
		sigs[reverse(b)] = struct{}{}
	}
	t.signatures = sigs
}

// Signatures returns the sorted signature set. It holds 8 strings unless a
// border is a palindrome or two borders coincide.
func (t *Tile) Signatures() []string {
	out := make([]string, 0, len(t.signatures))
	for s := range t.signatures {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// HasSignature reports whether s is one of t's borders, either direction.
func (t *Tile) HasSignature(s string) bool {
	_, ok := t.signatures[s]
	return ok
}

// Matches reports whether t's border on side s appears in other's
// signature set.
func (t *Tile) Matches(other *Tile, s Side) bool {
	return other.HasSignature(t.Border(s))
}

// IsNeighbor reports whether t and other are distinct tiles sharing at
// least one signature. It is symmetric and has no side effects.
func (t *Tile) IsNeighbor(other *Tile) bool {
	if t.ID == other.ID {
		return false
	}
	small, large := t.signatures, other.signatures
	if len(large) < len(small) {
		small, large = large, small
	}
	for s := range small {
		if _, ok := large[s]; ok {
			return true
		}
	}
	return false
}

// Rotate turns the tile 90° clockwise in place.
func (t *Tile) Rotate() {
	t.pixels = t.pixels.Rotate()
	t.refresh()
}

// Flip mirrors the tile in place by reversing its row order.
func (t *Tile) Flip() {
	t.pixels = t.pixels.Flip()
	t.refresh()
}

// Orient applies group element o to the current orientation.
func (t *Tile) Orient(o grid.Orientation) {
	t.pixels = t.pixels.Apply(o)
	t.refresh()
}

// View returns a detached copy of t presented in orientation o. t itself
// is not touched.
func (t *Tile) View(o grid.Orientation) *Tile {
	v := &Tile{ID: t.ID, pixels: t.pixels.Apply(o)}
	v.refresh()
	return v
}

// Adapt reorients t so that Border(s) equals target exactly. The search
// starts from the current orientation and tries the four rotations before
// the four flipped rotations. On failure the tile is left unchanged and
// ErrNoOrientation is returned.
func (t *Tile) Adapt(target string, s Side) error {
	o, ok := grid.Search(func(o grid.Orientation) bool {
		return border(t.pixels.Apply(o), s) == target
	})
	if !ok {
		return fmt.Errorf("%w: tile %d, %s border %s", ErrNoOrientation, t.ID, s, target)
	}
	t.Orient(o)
	return nil
}

// Interior returns the pixels without the outer ring.
func (t *Tile) Interior() grid.Grid {
	in, _ := t.pixels.Interior() // New guarantees side >= 3
	return in
}

// String renders t in the block format accepted by Parse.
func (t *Tile) String() string {
	return fmt.Sprintf("%s%d:\n%s", headerPrefix, t.ID, t.pixels)
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
