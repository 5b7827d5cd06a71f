package tile_test

import (
	"fmt"

	"github.com/katalvlaran/mosaic/tile"
)

// ExampleTile_Adapt turns a tile until its left border continues the right
// border of the tile placed before it.
func ExampleTile_Adapt() {
	left, _ := tile.Parse("Tile 1:\n#..\n#.#\n..#")
	right, _ := tile.Parse("Tile 2:\n...\n...\n##.")

	fmt.Println(left.IsNeighbor(right))
	if err := right.Adapt(left.Border(tile.Right), tile.Left); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(right.Border(tile.Left))
	// Output:
	// true
	// .##
}
