package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
)

// BenchmarkDFS_Chain measures DFS on a linear chain, where the per-path cycle
// scan dominates.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 1000
	g := core.NewTable[int]()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS[int](g, 0, N)
	}
}

// BenchmarkFindCycle_Ring measures cycle detection on a directed ring.
func BenchmarkFindCycle_Ring(b *testing.B) {
	const N = 5000
	g := core.NewTable[int](core.WithDirected(true))
	for i := 0; i < N; i++ {
		_ = g.AddEdge(i, (i+1)%N, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.FindCycle[int](g, 0)
	}
}
