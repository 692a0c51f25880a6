// Package bestfirst: the shared runner behind UniformCost, GreedyBestFirst and AStar.

package bestfirst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// policy selects how the runner prioritizes and records discoveries.
type policy int

const (
	policyRelax  policy = iota // g-cost map with relaxation (UniformCost, AStar)
	policyGreedy               // first-write predecessor, h-only priority
)

// UniformCost expands the state with the lowest accumulated cost g(n) first.
// Returns the cheapest path, its exact cost and the number of expanded states.
// An unreachable goal yields core.Unreachable, not an error.
func UniformCost[S comparable](g core.Graph[S], start, goal S, opts ...Option) (core.Result[S], error) {
	return search(g, start, goal, heuristic.Zero[S]{}, policyRelax, opts)
}

// AStar expands the state with the lowest f(n) = g(n) + h(n) first.
//
// On discovering a strictly cheaper path to a state it updates the g-cost and
// predecessor and pushes a new frontier entry; older entries for that state are
// skipped when popped. Once a state is closed its g-cost is final. The returned
// cost is the maintained g-cost of the goal, not a replay.
func AStar[S comparable](g core.Graph[S], start, goal S, h heuristic.Heuristic[S], opts ...Option) (core.Result[S], error) {
	if h == nil {
		return core.Unreachable[S](0), ErrNilHeuristic
	}

	return search(g, start, goal, h, policyRelax, opts)
}

// GreedyBestFirst expands the state with the lowest h(n) first, ignoring the
// cost accumulated so far. It is not optimal: a misleading heuristic can return
// an arbitrarily expensive path.
//
// A state's predecessor is recorded the first time the state is discovered and
// never overwritten, even when a later discovery would have been cheaper. The
// total cost is then computed by replaying the returned path against g, so it
// is always consistent with the path but may not be the cheapest cost of any
// path through the same states. A path edge the graph cannot price fails with
// core.ErrMissingEdgeCost unless WithMissingEdgePolicy(core.ZeroFillMissing).
func GreedyBestFirst[S comparable](g core.Graph[S], start, goal S, h heuristic.Heuristic[S], opts ...Option) (core.Result[S], error) {
	if h == nil {
		return core.Unreachable[S](0), ErrNilHeuristic
	}

	return search(g, start, goal, h, policyGreedy, opts)
}

// runner holds the mutable state of a single search. It is created per call
// and discarded on return.
type runner[S comparable] struct {
	graph  core.Graph[S]
	h      heuristic.Heuristic[S]
	goal   S
	policy policy
	opts   Options

	frontier frontier[S]
	seq      uint64         // next insertion sequence number
	cost     map[S]float64  // best known g(n); policyRelax only
	parent   map[S]S        // predecessor links for reconstruction
	closed   map[S]struct{} // expanded states
	expanded int
}

func search[S comparable](g core.Graph[S], start, goal S, h heuristic.Heuristic[S], p policy, opts []Option) (core.Result[S], error) {
	// 1) Validate inputs and options.
	if g == nil {
		return core.Unreachable[S](0), core.ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return core.Unreachable[S](0), err
	}

	// 2) Fresh per-call state.
	r := &runner[S]{
		graph:    g,
		h:        h,
		goal:     goal,
		policy:   p,
		opts:     o,
		frontier: make(frontier[S], 0, 64),
		parent:   make(map[S]S),
		closed:   make(map[S]struct{}),
	}
	if p == policyRelax {
		r.cost = map[S]float64{start: 0}
	}

	// 3) Seed the frontier with the start state.
	hs, err := r.estimate(start)
	if err != nil {
		return core.Unreachable[S](0), err
	}
	r.push(start, r.priority(0, hs))

	// 4) Main loop.
	return r.loop()
}

// loop pops states until the goal is dequeued, the frontier is exhausted,
// the context is cancelled or the expansion limit is hit.
func (r *runner[S]) loop() (core.Result[S], error) {
	for r.frontier.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return core.Unreachable[S](r.expanded), r.opts.Ctx.Err()
		default:
		}

		it := heap.Pop(&r.frontier).(item[S])
		if _, done := r.closed[it.state]; done {
			continue // stale duplicate
		}
		r.closed[it.state] = struct{}{}
		r.expanded++
		if r.opts.OnExpand != nil {
			r.opts.OnExpand(r.expanded, it.priority)
		}

		if it.state == r.goal {
			return r.finish(it.state)
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return core.Unreachable[S](r.expanded), fmt.Errorf("%w: %d states", ErrExpansionLimit, r.expanded)
		}

		if err := r.expand(it.state); err != nil {
			return core.Unreachable[S](r.expanded), err
		}
	}

	return core.Unreachable[S](r.expanded), nil
}

// expand generates the successors of s and records them per policy.
func (r *runner[S]) expand(s S) error {
	for _, e := range r.graph.Successors(s) {
		if _, done := r.closed[e.To]; done {
			continue
		}
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%g", core.ErrNegativeCost, s, e.To, e.Cost)
		}

		if r.policy == policyGreedy {
			if _, seen := r.parent[e.To]; !seen {
				r.parent[e.To] = s // first discovery wins
			}
			hv, err := r.estimate(e.To)
			if err != nil {
				return err
			}
			r.push(e.To, hv)
			continue
		}

		// Relaxation: only a strictly cheaper g updates the state.
		ng := r.cost[s] + e.Cost
		if old, seen := r.cost[e.To]; seen && ng >= old {
			continue
		}
		r.cost[e.To] = ng
		r.parent[e.To] = s
		hv, err := r.estimate(e.To)
		if err != nil {
			return err
		}
		r.push(e.To, r.priority(ng, hv))
	}

	return nil
}

// finish reconstructs the path to goal and computes its cost.
func (r *runner[S]) finish(goal S) (core.Result[S], error) {
	path, err := core.Reconstruct(r.parent, goal)
	if err != nil {
		return core.Unreachable[S](r.expanded), fmt.Errorf("bestfirst: %w", err)
	}

	if r.policy == policyRelax {
		return core.Result[S]{Path: path, Cost: r.cost[goal], Expanded: r.expanded}, nil
	}

	total, _, err := core.PathCost(r.graph, path, r.opts.MissingEdge)
	if err != nil {
		return core.Unreachable[S](r.expanded), fmt.Errorf("bestfirst: greedy cost replay: %w", err)
	}

	return core.Result[S]{Path: path, Cost: total, Expanded: r.expanded}, nil
}

// priority maps (g, h) to the frontier key for the active policy.
func (r *runner[S]) priority(g, h float64) float64 {
	if r.policy == policyGreedy {
		return h
	}

	return g + h
}

func (r *runner[S]) estimate(s S) (float64, error) {
	v, err := r.h.Estimate(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: h(%v)=%g", ErrNegativeHeuristic, s, v)
	}

	return v, nil
}

func (r *runner[S]) push(s S, priority float64) {
	heap.Push(&r.frontier, item[S]{state: s, priority: priority, seq: r.seq})
	r.seq++
}
