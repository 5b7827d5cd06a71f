package pattern

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mosaic/grid"
)

// Offset is a cell position relative to a pattern's top-left corner.
type Offset struct {
	Row, Col int
}

// Pattern is an immutable shape. The zero value has no offsets and never
// matches.
type Pattern struct {
	name    string
	offsets []Offset
	height  int
	width   int
}

var seaMonster = MustParse("sea monster",
	"                  # ",
	"#    ##    ##    ###",
	" #  #  #  #  #  #   ",
)

// SeaMonster returns the 15-cell, 3×20 marker searched for by default.
func SeaMonster() Pattern { return seaMonster }

// Parse reads pattern art: '#' marks a required filled pixel, any other
// character is ignored. Offsets are taken relative to the bounding box of
// the '#' cells, so leading blank rows or columns do not shift the anchor.
func Parse(name string, art []string) (Pattern, error) {
	var cells []Offset
	minR, minC := -1, -1
	maxR, maxC := 0, 0
	for r, line := range art {
		for c := 0; c < len(line); c++ {
			if line[c] != byte(grid.Filled) {
				continue
			}
			cells = append(cells, Offset{Row: r, Col: c})
			if minR < 0 || r < minR {
				minR = r
			}
			if minC < 0 || c < minC {
				minC = c
			}
			maxR = max(maxR, r)
			maxC = max(maxC, c)
		}
	}
	if len(cells) == 0 {
		return Pattern{}, fmt.Errorf("%w: %q", ErrEmptyPattern, name)
	}
	for i := range cells {
		cells[i].Row -= minR
		cells[i].Col -= minC
	}

	return Pattern{
		name:    name,
		offsets: cells,
		height:  maxR - minR + 1,
		width:   maxC - minC + 1,
	}, nil
}

// MustParse is Parse for fixed literals; it panics on empty art.
func MustParse(name string, art ...string) Pattern {
	p, err := Parse(name, art)
	if err != nil {
		panic(err)
	}
	return p
}

// Name is the label given to Parse.
func (p Pattern) Name() string { return p.name }

// Len is the number of required cells.
func (p Pattern) Len() int { return len(p.offsets) }

// Height is the number of rows in the bounding box.
func (p Pattern) Height() int { return p.height }

// Width is the number of columns in the bounding box.
func (p Pattern) Width() int { return p.width }

// Offsets returns a copy of the required cells in row-major order.
func (p Pattern) Offsets() []Offset {
	return append([]Offset(nil), p.offsets...)
}

// MatchAt reports whether p sits in img with its top-left at (row, col).
func (p Pattern) MatchAt(img grid.Grid, row, col int) bool {
	if len(p.offsets) == 0 {
		return false
	}
	for _, o := range p.offsets {
		r, c := row+o.Row, col+o.Col
		if !img.InBounds(r, c) || img.At(r, c) != grid.Filled {
			return false
		}
	}
	return true
}

// Count returns the number of anchors where p matches img. Overlapping
// matches are all counted.
func (p Pattern) Count(img grid.Grid) int {
	n := 0
	for r := 0; r+p.height <= img.Height(); r++ {
		for c := 0; c+p.width <= img.Width(); c++ {
			if p.MatchAt(img, r, c) {
				n++
			}
		}
	}
	return n
}

// String renders the bounding box with '#' for required cells and ' '
// elsewhere.
func (p Pattern) String() string {
	rows := make([][]byte, p.height)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(" ", p.width))
	}
	for _, o := range p.offsets {
		rows[o.Row][o.Col] = byte(grid.Filled)
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}
