package bestfirst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// gridCell is a cell of the benchmark grid.
type gridCell struct{ r, c int }

// gridGraph returns an n×n 4-connected grid with unit costs.
func gridGraph(n int) core.LazyGraph[gridCell] {
	return func(p gridCell) []core.Edge[gridCell] {
		out := make([]core.Edge[gridCell], 0, 4)
		for _, d := range [4]gridCell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			q := gridCell{p.r + d.r, p.c + d.c}
			if q.r >= 0 && q.r < n && q.c >= 0 && q.c < n {
				out = append(out, core.Edge[gridCell]{To: q, Cost: 1})
			}
		}
		return out
	}
}

func manhattanTo(goal gridCell) heuristic.Plain[gridCell] {
	return func(p gridCell) float64 {
		dr, dc := goal.r-p.r, goal.c-p.c
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		return float64(dr + dc)
	}
}

// BenchmarkUniformCost_Grid measures UCS corner-to-corner on a 100×100 grid.
func BenchmarkUniformCost_Grid(b *testing.B) {
	const n = 100
	g := gridGraph(n)
	goal := gridCell{n - 1, n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.UniformCost[gridCell](g, gridCell{}, goal)
	}
}

// BenchmarkAStar_Grid measures A* with Manhattan distance on the same grid.
func BenchmarkAStar_Grid(b *testing.B) {
	const n = 100
	g := gridGraph(n)
	goal := gridCell{n - 1, n - 1}
	h := manhattanTo(goal)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.AStar[gridCell](g, gridCell{}, goal, h)
	}
}

// BenchmarkGreedy_Grid measures greedy best-first with Manhattan distance.
func BenchmarkGreedy_Grid(b *testing.B) {
	const n = 100
	g := gridGraph(n)
	goal := gridCell{n - 1, n - 1}
	h := manhattanTo(goal)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.GreedyBestFirst[gridCell](g, gridCell{}, goal, h)
	}
}

// BenchmarkUniformCost_RandomTable measures UCS on a random sparse Table
// of 2000 states.
func BenchmarkUniformCost_RandomTable(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	g := randomConnected(b, rnd, 2000, 6000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bestfirst.UniformCost[int](g, 0, 1999)
	}
}
