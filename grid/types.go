package grid

import "fmt"

// Pixel is one cell of an image.
type Pixel byte

const (
	// Filled marks a set pixel.
	Filled Pixel = '#'
	// Empty marks a clear pixel.
	Empty Pixel = '.'
)

// Valid reports whether p is Filled or Empty.
func (p Pixel) Valid() bool {
	return p == Filled || p == Empty
}

// Grid is a rectangular image stored row by row: g[row][col].
// Transformations return new grids and leave the receiver untouched.
type Grid [][]Pixel

// Orientation is one element of the symmetry group of the square:
// an optional flip (row order reversed) followed by Turns clockwise
// quarter turns.
type Orientation struct {
	Flipped bool
	Turns   int
}

// Identity leaves a grid as it is.
var Identity = Orientation{}

// Orientations lists the eight group elements in search order:
// rotations first, then the flipped rotations.
var Orientations = [8]Orientation{
	{Flipped: false, Turns: 0},
	{Flipped: false, Turns: 1},
	{Flipped: false, Turns: 2},
	{Flipped: false, Turns: 3},
	{Flipped: true, Turns: 0},
	{Flipped: true, Turns: 1},
	{Flipped: true, Turns: 2},
	{Flipped: true, Turns: 3},
}

// String renders o as "rot<degrees>" with a "flip+" prefix when mirrored.
func (o Orientation) String() string {
	s := fmt.Sprintf("rot%d", o.turns()*90)
	if o.Flipped {
		return "flip+" + s
	}
	return s
}

// turns normalises Turns into [0, 4).
func (o Orientation) turns() int {
	return ((o.Turns % 4) + 4) % 4
}

// Search returns the first orientation, in Orientations order, for which
// accept reports true. It never calls accept more than eight times.
func Search(accept func(Orientation) bool) (Orientation, bool) {
	for _, o := range Orientations {
		if accept(o) {
			return o, true
		}
	}
	return Orientation{}, false
}
