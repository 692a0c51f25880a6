package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/grid"
)

// randomTerrain builds an n×n grid with values in [0,4] (about 20% walls) and
// open corners.
func randomTerrain(n int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			values[y][x] = rng.Intn(5)
		}
	}
	values[0][0], values[n-1][n-1] = 1, 1

	return values
}

// BenchmarkComponents measures Components on a 300×300 random grid.
func BenchmarkComponents(b *testing.B) {
	g, err := grid.New(randomTerrain(300, 42))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}

// BenchmarkAStar_Conn8 measures corner-to-corner A* on a 200×200 random grid.
func BenchmarkAStar_Conn8(b *testing.B) {
	const n = 200
	g, err := grid.New(randomTerrain(n, 7), grid.WithConnectivity(grid.Conn8))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	start, goal := grid.Cell{}, grid.Cell{X: n - 1, Y: n - 1}
	h := g.Heuristic(goal)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.AStar[grid.Cell](g, start, goal, h)
	}
}
