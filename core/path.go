// Package core: path reconstruction and cost replay.

package core

import "fmt"

// MissingEdgePolicy selects what PathCost does when a path edge has no cost.
type MissingEdgePolicy int

const (
	// RaiseOnMissing fails with ErrMissingEdgeCost.
	RaiseOnMissing MissingEdgePolicy = iota

	// ZeroFillMissing counts the missing edge as cost 0 and continues.
	ZeroFillMissing
)

// String returns the policy name.
func (p MissingEdgePolicy) String() string {
	switch p {
	case RaiseOnMissing:
		return "raise"
	case ZeroFillMissing:
		return "zero-fill"
	default:
		return fmt.Sprintf("MissingEdgePolicy(%d)", int(p))
	}
}

// Step is one edge of a replayed path with the cost charged for it.
type Step[S comparable] struct {
	From S
	To   S
	Cost float64
}

// Reconstruct walks predecessor links back from terminal until it reaches a
// state with no recorded predecessor (the start) and returns the sequence in
// start→terminal order.
//
// A predecessor cycle can never terminate; it is detected by bounding the walk
// to len(parent) links and reported as ErrBrokenChain.
// Complexity: O(path length).
func Reconstruct[S comparable](parent map[S]S, terminal S) ([]S, error) {
	path := []S{terminal}
	cur := terminal
	for links := 0; ; links++ {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		if links >= len(parent) {
			return nil, fmt.Errorf("%w: cycle while walking back from %v", ErrBrokenChain, terminal)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → terminal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// EdgeCost looks up the cost of u→v, falling back to v→u so that undirected
// tables recorded in a single direction still resolve.
func EdgeCost[S comparable](g Graph[S], u, v S) (float64, bool) {
	if c, ok := lookup(g, u, v); ok {
		return c, true
	}

	return lookup(g, v, u)
}

func lookup[S comparable](g Graph[S], from, to S) (float64, bool) {
	if cl, ok := g.(CostLookup[S]); ok {
		return cl.Cost(from, to)
	}
	for _, e := range g.Successors(from) {
		if e.To == to {
			return e.Cost, true
		}
	}

	return 0, false
}

// PathCost replays path edge by edge against g and returns the total together
// with a per-edge breakdown. Paths with fewer than two states cost 0.
//
// When an edge has no cost, RaiseOnMissing returns ErrMissingEdgeCost and
// ZeroFillMissing charges 0 for it.
func PathCost[S comparable](g Graph[S], path []S, policy MissingEdgePolicy) (float64, []Step[S], error) {
	if len(path) < 2 {
		return 0, nil, nil
	}

	total := 0.0
	steps := make([]Step[S], 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		c, ok := EdgeCost(g, u, v)
		if !ok {
			if policy == RaiseOnMissing {
				return 0, nil, fmt.Errorf("%w: %v - %v", ErrMissingEdgeCost, u, v)
			}
			c = 0
		}
		total += c
		steps = append(steps, Step[S]{From: u, To: v, Cost: c})
	}

	return total, steps, nil
}
