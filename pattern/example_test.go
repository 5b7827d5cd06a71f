package pattern_test

import (
	"fmt"

	"github.com/katalvlaran/mosaic/grid"
	"github.com/katalvlaran/mosaic/pattern"
)

func ExampleSearch() {
	arrow := pattern.MustParse("arrow",
		"#.",
		"##",
	)
	img := grid.MustParse(
		"##..",
		".#..",
		"....",
	)
	m, err := pattern.Search(img, arrow)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m.Orientation, m.Count)
	// Output: rot180 1
}
