// Package lvsearch is a toolkit of informed and uninformed state-space search,
// from the shared best-first engine to the problems it was built to solve.
//
// What is inside?
//
//	A generic, deterministic search library plus the domains that exercise it:
//		• Graph contract: core.Graph with materialized (core.Table) and lazy (core.LazyGraph) realizations
//		• Uninformed search: BFS, DFS (with cycle detection)
//		• Best-first search: uniform cost, greedy best-first, A*
//		• Heuristics: straight-line distance, Hamming, Manhattan, linear conflict, Gaschnig, octile
//		• Domains: Romania roads, sliding-tile puzzles, river crossing, terrain grids
//		• Collaborators: minimax game-tree evaluation, CSP backtracking (map colouring)
//		• Tooling: benchmark harness with CSV and Prometheus output, the lvsearch CLI
//
// Guarantees:
//
//   - Every search is synchronous and allocates its own frontier, so any
//     number of searches may share a graph from different goroutines.
//   - Frontier ties break by insertion order; the same inputs always return
//     the same path and expansion count.
//   - An unreachable goal is a Result with Found() == false, never an error.
//
// Layout:
//
//	core/       Graph, Table, LazyGraph, Result, path reconstruction & cost replay
//	heuristic/  Heuristic contract and adapters
//	bfs/ dfs/   uninformed search
//	bestfirst/  UniformCost, GreedyBestFirst, AStar
//	search/     Algorithm enum and Solver (timing, logging)
//	route/ puzzle/ river/ grid/ problem domains
//	minimax/ csp/ adversarial and constraint collaborators
//	bench/ config/ logging/ benchmark harness and ambient stack
//	cmd/lvsearch command-line front end
//
// Quick example:
//
//	g := route.Graph()
//	h, _ := route.SLD("Bucharest")
//	res, _ := bestfirst.AStar[string](g, "Arad", "Bucharest", h)
//	// res.Path = [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest], res.Cost = 418
package lvsearch
