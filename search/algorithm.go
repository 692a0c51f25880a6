// Package search: the closed set of algorithms a Solver can run.

package search

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the search strategies. The set is closed.
type Algorithm int

const (
	// BFS is breadth-first search (bfs.BFS).
	BFS Algorithm = iota

	// DFS is depth-first search (dfs.DFS).
	DFS

	// UniformCost is uniform-cost search (bestfirst.UniformCost).
	UniformCost

	// Greedy is greedy best-first search (bestfirst.GreedyBestFirst).
	Greedy

	// AStar is A* (bestfirst.AStar).
	AStar
)

var algorithmNames = [...]string{
	BFS:         "bfs",
	DFS:         "dfs",
	UniformCost: "ucs",
	Greedy:      "greedy",
	AStar:       "a*",
}

// aliases accepted by ParseAlgorithm in addition to the canonical names.
var algorithmAliases = map[string]Algorithm{
	"uniform":      UniformCost,
	"uniform-cost": UniformCost,
	"astar":        AStar,
	"a-star":       AStar,
	"greedy-best":  Greedy,
}

// Algorithms returns every Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UniformCost, Greedy, AStar}
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Informed reports whether the algorithm consumes a heuristic.
func (a Algorithm) Informed() bool {
	return a == Greedy || a == AStar
}

// ParseAlgorithm resolves a case-insensitive name or alias.
// Returns ErrUnknownAlgorithm for anything else.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
