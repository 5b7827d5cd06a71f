package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from text rows of '#' and '.'.
// Returns ErrEmptyGrid if there are no rows or the first row is empty,
// ErrNonRectangular if any row length differs and ErrInvalidSymbol for any
// other character.
// Complexity: O(W×H) time and memory.
func Parse(lines []string) (Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(lines[0])
	g := make(Grid, len(lines))
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), w)
		}
		row := make([]Pixel, w)
		for c := 0; c < w; c++ {
			p := Pixel(line[c])
			if !p.Valid() {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrInvalidSymbol, line[c], r, c)
			}
			row[c] = p
		}
		g[r] = row
	}

	return g, nil
}

// MustParse is Parse for fixed literals; it panics on malformed input.
func MustParse(lines ...string) Grid {
	g, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// New returns an h×w grid with every cell set to fill.
func New(h, w int, fill Pixel) Grid {
	g := make(Grid, h)
	for r := range g {
		row := make([]Pixel, w)
		for c := range row {
			row[c] = fill
		}
		g[r] = row
	}
	return g
}

// Height is the number of rows.
func (g Grid) Height() int { return len(g) }

// Width is the number of columns (0 for an empty grid).
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height() && col >= 0 && col < g.Width()
}

// At returns the pixel at (row, col). The caller checks bounds.
func (g Grid) At(row, col int) Pixel {
	return g[row][col]
}

// Coordinate converts a row-major index back to (row, col). It returns
// (-1, -1) for an empty grid or an index outside it.
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (row, col int) {
	w := g.Width()
	if w == 0 || idx < 0 || idx >= w*g.Height() {
		return -1, -1
	}
	return idx / w, idx % w
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]Pixel(nil), row...)
	}
	return out
}

// Equal reports whether both grids have the same shape and cells.
func (g Grid) Equal(other Grid) bool {
	if g.Height() != other.Height() || g.Width() != other.Width() {
		return false
	}
	for r := range g {
		if string(g[r]) != string(other[r]) {
			return false
		}
	}
	return true
}

// Row returns row i as a string, left to right.
func (g Grid) Row(i int) string {
	return string(g[i])
}

// Column returns column i as a string, top to bottom.
func (g Grid) Column(i int) string {
	b := make([]byte, g.Height())
	for r := range g {
		b[r] = byte(g[r][i])
	}
	return string(b)
}

// Lines returns every row as a string.
func (g Grid) Lines() []string {
	out := make([]string, len(g))
	for r := range g {
		out[r] = string(g[r])
	}
	return out
}

// String joins the rows with newlines.
func (g Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Count returns the number of cells equal to p.
// Complexity: O(W×H).
func (g Grid) Count(p Pixel) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if v == p {
				n++
			}
		}
	}
	return n
}

// Rotate returns g turned 90° clockwise: out[r][c] = g[H-1-c][r].
// Four rotations give back the original grid.
// Complexity: O(W×H).
func (g Grid) Rotate() Grid {
	h, w := g.Height(), g.Width()
	out := make(Grid, w)
	for r := 0; r < w; r++ {
		row := make([]Pixel, h)
		for c := 0; c < h; c++ {
			row[c] = g[h-1-c][r]
		}
		out[r] = row
	}
	return out
}

// Flip returns g with its row order reversed (a mirror about the
// horizontal axis). Two flips give back the original grid.
// Complexity: O(W×H).
func (g Grid) Flip() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[len(g)-1-r] = append([]Pixel(nil), row...)
	}
	return out
}

// Apply returns g presented in orientation o: flipped first when
// o.Flipped, then rotated o.Turns times.
func (g Grid) Apply(o Orientation) Grid {
	out := g.Clone()
	if o.Flipped {
		out = out.Flip()
	}
	for i := 0; i < o.turns(); i++ {
		out = out.Rotate()
	}
	return out
}

// Interior returns g without its outermost row and column on every side.
// Returns ErrTooSmall when nothing would be left.
func (g Grid) Interior() (Grid, error) {
	h, w := g.Height(), g.Width()
	if h < 3 || w < 3 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, h, w)
	}
	out := make(Grid, h-2)
	for r := 1; r < h-1; r++ {
		out[r-1] = append([]Pixel(nil), g[r][1:w-1]...)
	}
	return out, nil
}

// JoinHorizontal places parts side by side, left to right.
// All parts must share the same height.
func JoinHorizontal(parts ...Grid) (Grid, error) {
	if len(parts) == 0 {
		return nil, ErrEmptyGrid
	}
	h := parts[0].Height()
	out := make(Grid, h)
	for i, p := range parts {
		if p.Height() != h {
			return nil, fmt.Errorf("%w: part %d has height %d, want %d", ErrDimensionMismatch, i, p.Height(), h)
		}
		for r := 0; r < h; r++ {
			out[r] = append(out[r], p[r]...)
		}
	}
	return out, nil
}

// JoinVertical stacks parts top to bottom.
// All parts must share the same width.
func JoinVertical(parts ...Grid) (Grid, error) {
	if len(parts) == 0 {
		return nil, ErrEmptyGrid
	}
	w := parts[0].Width()
	var out Grid
	for i, p := range parts {
		if p.Width() != w {
			return nil, fmt.Errorf("%w: part %d has width %d, want %d", ErrDimensionMismatch, i, p.Width(), w)
		}
		out = append(out, p.Clone()...)
	}
	return out, nil
}
