package bfs_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/mosaic/bfs"
	"github.com/katalvlaran/mosaic/core"
)

// square3 builds the undirected 3×3 lattice with vertices r*3+c.
func square3(t *testing.T) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int]()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v := r*3 + c
			g.AddVertex(v)
			if c+1 < 3 {
				if err := g.AddEdge(v, v+1); err != nil {
					t.Fatalf("AddEdge: %v", err)
				}
			}
			if r+1 < 3 {
				if err := g.AddEdge(v, v+3); err != nil {
					t.Fatalf("AddEdge: %v", err)
				}
			}
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[int](nil, 1); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph[int]()
	if _, err := bfs.BFS(g, 1); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g.AddVertex(1)
	if _, err := bfs.BFS(g, 1, bfs.WithMaxDepth[int](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_ManhattanDepths checks that depth from a lattice corner equals
// row + column for every vertex.
func TestBFS_ManhattanDepths(t *testing.T) {
	res, err := bfs.BFS(square3(t), 0)
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	for v := 0; v < 9; v++ {
		if want := v/3 + v%3; res.Depth[v] != want {
			t.Errorf("Depth[%d] = %d; want %d", v, res.Depth[v], want)
		}
	}
	if want := []int{0, 1, 3, 2, 4, 6, 5, 7, 8}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	path, err := res.PathTo(8)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	if len(path) != 5 || path[0] != 0 || path[4] != 8 {
		t.Errorf("PathTo(8) = %v", path)
	}
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := square3(t)
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth[int](1))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if len(res.Order) != 3 {
		t.Errorf("MaxDepth(1) visited %v; want 3 vertices", res.Order)
	}

	// forbid vertical moves: only the first row is reachable
	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(cur, nbr int) bool {
		return cur/3 == nbr/3
	}))
	if err != nil {
		t.Fatalf("BFS: %v", err)
	}
	if res.Reached(3) || !res.Reached(2) {
		t.Errorf("filter: Order = %v", res.Order)
	}
	if _, err := res.PathTo(3); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(3): want ErrNoPath, got %v", err)
	}
}

func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(square3(t), 0, bfs.WithOnVisit(func(id, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
}

func ExampleBFS() {
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	res, _ := bfs.BFS(g, "A")
	fmt.Println(res.Order, res.Depth["C"])
	// Output:
	// [A B C] 2
}
