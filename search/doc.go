// Package search selects and runs one of the search algorithms by name.
//
// Algorithm is a closed enumeration {BFS, DFS, UniformCost, Greedy, AStar}
// parsed from user input with ParseAlgorithm ("bfs", "dfs", "ucs", "greedy",
// "a*" and a few aliases). NewSolver resolves the Algorithm to its statically
// typed entry point once; Solve then calls it and measures the wall-clock time
// of the call, which the engines themselves never do.
//
//	s, err := search.NewSolver[string](g, search.AStar, h, search.WithLogger(log))
//	rep, err := s.Solve(ctx, "Arad", "Bucharest")
//	fmt.Println(rep.Path, rep.Cost, rep.Expanded, rep.Duration)
//
// Expansion-limit errors from bfs, dfs and bestfirst are wrapped in
// ErrExpansionLimit so callers can test for one sentinel.
package search
