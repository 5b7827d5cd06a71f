package core_test

import (
	"fmt"

	"github.com/katalvlaran/mosaic/core"
)

// ExampleGraph_NeighborIDs shows that neighbours come back in the order
// their edges were discovered.
func ExampleGraph_NeighborIDs() {
	g := core.NewGraph[int]()
	_ = g.AddEdge(1951, 2311)
	_ = g.AddEdge(1951, 2729)
	_ = g.AddEdge(2311, 3079)

	ids, _ := g.NeighborIDs(2311)
	fmt.Println(ids)
	// Output:
	// [1951 3079]
}
