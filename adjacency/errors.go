package adjacency

import "errors"

var (
	// ErrNoTiles indicates Build was called with an empty tile list.
	ErrNoTiles = errors.New("adjacency: no tiles")
	// ErrUnknownTile indicates a lookup for an id that is not in the graph.
	ErrUnknownTile = errors.New("adjacency: unknown tile")
	// ErrCornerCount indicates a graph without exactly four corner tiles.
	ErrCornerCount = errors.New("adjacency: expected exactly four corner tiles")
	// ErrProductOverflow indicates corner ids whose product does not fit
	// in an int64.
	ErrProductOverflow = errors.New("adjacency: corner product overflows int64")
	// ErrNotSquare indicates a tile count that cannot form a square of at
	// least 2×2 tiles.
	ErrNotSquare = errors.New("adjacency: tile count is not a square of side >= 2")
	// ErrDisconnected indicates tiles that cannot be reached from the others.
	ErrDisconnected = errors.New("adjacency: tile graph is not connected")
	// ErrDegreeMismatch indicates neighbour counts that do not fit a square
	// arrangement.
	ErrDegreeMismatch = errors.New("adjacency: neighbour counts do not form a square")
)
