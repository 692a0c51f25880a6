package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
)

// ExampleBFS_gridTraversal finds a corner-to-corner path on a 3×3 grid.
// Vertices are "i_j"; right edges are inserted before down edges, so the
// path first walks along the top row.
func ExampleBFS_gridTraversal() {
	g := core.NewTable[string]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS[string](g, "0_0", "2_2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path, res.Expanded)
	// Output:
	// [0_0 0_1 0_2 1_2 2_2] 9
}

// ExampleBFS_lazyGraph searches an implicit graph: from n, either double it or
// add one. BFS returns the shortest operation sequence from 1 to 10.
func ExampleBFS_lazyGraph() {
	g := core.LazyGraph[int](func(n int) []core.Edge[int] {
		return []core.Edge[int]{{To: 2 * n, Cost: 1}, {To: n + 1, Cost: 1}}
	})

	res, err := bfs.BFS[int](g, 1, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path, res.Steps())
	// Output: [1 2 4 5 10] 4
}
