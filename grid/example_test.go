package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mosaic/grid"
)

// ExampleSearch finds the orientation that moves the single filled pixel
// of a 3×3 grid from the top-left to the bottom-left corner.
func ExampleSearch() {
	g := grid.MustParse(
		"#..",
		"...",
		"...",
	)
	o, ok := grid.Search(func(o grid.Orientation) bool {
		return g.Apply(o).At(2, 0) == grid.Filled
	})
	fmt.Println(o, ok)
	// Output:
	// rot270 true
}
