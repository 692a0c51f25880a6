// Package dfs: the LIFO walker over full paths.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// entry is one stack element: a full path from start and its cost.
type entry[S comparable] struct {
	path []S
	cost float64
}

// walker encapsulates mutable DFS state.
type walker[S comparable] struct {
	graph    core.Graph[S]
	goal     S
	opts     Options
	stack    []entry[S]
	expanded int
}

// DFS runs depth-first search on g from start to goal.
//
// The frontier is a LIFO stack of full paths. Successors are pushed in graph
// order, so the last successor is explored first. A successor is skipped only
// if it already occurs on the candidate's own path; there is no global visited
// set, so the same state may be expanded again through a different path.
// The result is neither shortest nor cheapest, and on graphs with many
// distinct simple paths the running time is exponential.
//
// Returns core.ErrNilGraph, ErrOptionViolation, core.ErrNegativeCost,
// ErrExpansionLimit or the context error. An unreachable goal is
// core.Unreachable, not an error.
func DFS[S comparable](g core.Graph[S], start, goal S, opts ...Option) (core.Result[S], error) {
	// 1) Validate the graph and options.
	if g == nil {
		return core.Unreachable[S](0), core.ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return core.Unreachable[S](0), o.err
	}

	// 2) Seed the stack with the single-state path.
	w := &walker[S]{
		graph: g,
		goal:  goal,
		opts:  o,
		stack: []entry[S]{{path: []S{start}}},
	}

	// 3) Pop until the goal, exhaustion, cancellation or the limit.
	return w.loop()
}

func (w *walker[S]) loop() (core.Result[S], error) {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return core.Unreachable[S](w.expanded), w.opts.Ctx.Err()
		default:
		}

		cur := w.pop()
		last := cur.path[len(cur.path)-1]
		if last == w.goal {
			return core.Result[S]{Path: cur.path, Cost: cur.cost, Expanded: w.expanded}, nil
		}
		if w.opts.MaxExpansions > 0 && w.expanded >= w.opts.MaxExpansions {
			return core.Unreachable[S](w.expanded), fmt.Errorf("%w: %d paths", ErrExpansionLimit, w.expanded)
		}
		if err := w.pushSuccessors(cur, last); err != nil {
			return core.Unreachable[S](w.expanded), err
		}
	}

	return core.Unreachable[S](w.expanded), nil
}

// pop removes the top path and counts it as expanded.
func (w *walker[S]) pop() entry[S] {
	n := len(w.stack) - 1
	cur := w.stack[n]
	w.stack[n] = entry[S]{}
	w.stack = w.stack[:n]
	w.expanded++
	if w.opts.OnExpand != nil {
		w.opts.OnExpand(w.expanded, len(cur.path)-1)
	}

	return cur
}

// pushSuccessors extends cur by every successor of last not already on cur.
func (w *walker[S]) pushSuccessors(cur entry[S], last S) error {
	if w.opts.MaxDepth > 0 && len(cur.path)-1 >= w.opts.MaxDepth {
		return nil
	}
	for _, e := range w.graph.Successors(last) {
		if onPath(cur.path, e.To) {
			continue
		}
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%g", core.ErrNegativeCost, last, e.To, e.Cost)
		}
		next := make([]S, len(cur.path)+1)
		copy(next, cur.path)
		next[len(cur.path)] = e.To
		w.stack = append(w.stack, entry[S]{path: next, cost: cur.cost + e.Cost})
	}

	return nil
}

// onPath scans path for s. O(len(path)).
func onPath[S comparable](path []S, s S) bool {
	for _, p := range path {
		if p == s {
			return true
		}
	}

	return false
}
