// Package core defines the state-graph contract shared by every search in
// lvsearch, the materialized Table graph, the lazy graph adapter, the search
// Result, and the path utilities (reconstruction and cost replay).
//
// This file declares Edge, Graph, Result, the optional capability interfaces
// and the sentinel errors.
//
// Errors:
//
//	ErrNilGraph         - a nil Graph was handed to a search entry point.
//	ErrNegativeCost     - an edge with cost < 0 was added or traversed.
//	ErrMissingEdgeCost  - cost replay met a path edge absent from the graph.
//	ErrBrokenChain      - predecessor links form a cycle (internal invariant violation).
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil Graph was passed to a search.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNegativeCost indicates an edge cost below zero.
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrMissingEdgeCost indicates that cost replay found a path edge u→v
	// for which the graph reports no cost in either direction.
	ErrMissingEdgeCost = errors.New("core: missing edge cost")

	// ErrBrokenChain indicates that a predecessor map contains a cycle, so the
	// walk back from the terminal state never reaches the start.
	ErrBrokenChain = errors.New("core: broken predecessor chain")
)

// Edge is one successor of a state together with the cost of reaching it.
type Edge[S comparable] struct {
	// To is the successor state.
	To S

	// Cost is the non-negative cost of the transition.
	Cost float64
}

// Graph is the capability every search consumes: given a state, produce its
// successors and the cost of reaching each of them.
//
// Successors must be deterministic (same state, same slice order) because the
// order in which successors are generated feeds the frontier tie-break.
// A state unknown to the graph has no successors; that is not an error.
type Graph[S comparable] interface {
	Successors(s S) []Edge[S]
}

// Container is implemented by graphs that can answer membership queries.
// Lazy graphs report every state as present because their successors are
// valid by construction.
type Container[S comparable] interface {
	Has(s S) bool
}

// CostLookup is implemented by graphs that can return a single edge cost
// without enumerating successors. EdgeCost prefers it when available.
type CostLookup[S comparable] interface {
	Cost(from, to S) (float64, bool)
}

// Result is the outcome of one search invocation.
//
//   - Path: states from start to goal inclusive, nil when the goal is unreachable.
//   - Cost: total path cost, +Inf when the goal is unreachable.
//   - Expanded: number of states dequeued and expanded (not inserted).
type Result[S comparable] struct {
	Path     []S
	Cost     float64
	Expanded int
}

// Unreachable returns the negative result carrying the final expansion count.
func Unreachable[S comparable](expanded int) Result[S] {
	return Result[S]{Path: nil, Cost: math.Inf(1), Expanded: expanded}
}

// Found reports whether the search produced a path.
func (r Result[S]) Found() bool { return r.Path != nil }

// Steps returns the number of transitions on the path, or -1 if no path exists.
func (r Result[S]) Steps() int {
	if r.Path == nil {
		return -1
	}

	return len(r.Path) - 1
}
