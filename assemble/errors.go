package assemble

import "errors"

var (
	// ErrNotCorner indicates OrientTopLeft was asked to use a tile that does
	// not have exactly two neighbours.
	ErrNotCorner = errors.New("assemble: tile is not a corner")
	// ErrNoTopLeft indicates no corner could be oriented with its two
	// neighbours on the Right and Bottom sides.
	ErrNoTopLeft = errors.New("assemble: no corner fits the top-left position")
	// ErrIncompleteLayout indicates the rows built do not form a square
	// covering every tile.
	ErrIncompleteLayout = errors.New("assemble: layout is incomplete")
	// ErrLayoutMismatch indicates a placed tile whose graph distance from the
	// top-left corner disagrees with its grid position.
	ErrLayoutMismatch = errors.New("assemble: layout disagrees with adjacency graph")
	// ErrEmptyLayout indicates Stitch was given no rows.
	ErrEmptyLayout = errors.New("assemble: empty layout")
)
