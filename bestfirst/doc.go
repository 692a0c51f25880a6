// Package bestfirst implements the priority-queue-driven search engine shared
// by uniform-cost search, greedy best-first search and A*.
//
// Overview:
//
//   - One runner drives all three strategies. They differ only in the priority
//     a state is queued with and in how predecessors and costs are recorded:
//
//     UniformCost      priority g(n)          relax on strictly cheaper g, exact cost
//     GreedyBestFirst  priority h(n)          first-discovery predecessor, replayed cost
//     AStar            priority g(n) + h(n)   relax on strictly cheaper g, exact cost
//
//   - UniformCost is AStar with heuristic.Zero, so both expand states in the
//     same order and return the same path, cost and expansion count.
//
//   - Every search terminates when the goal is dequeued, not when it is
//     generated. With non-negative costs (and, for AStar, an admissible and
//     consistent heuristic) the returned path is optimal.
//
// Frontier and tie-breaking:
//
//   - The frontier is a container/heap min-heap keyed on (priority, seq), where
//     seq is the insertion counter. Equal priorities leave in insertion order,
//     so results depend only on the graph's successor order.
//   - Decrease-key is lazy, as in classic Dijkstra: a cheaper path pushes a new
//     entry and stale entries are skipped once their state is closed.
//
// Expansion count:
//
//   - Result.Expanded counts states removed from the frontier and expanded,
//     goal included. Stale duplicates do not count. An unreachable goal returns
//     core.Unreachable(expanded) with a nil error.
//
// Options:
//
//	WithContext(ctx)              // cancellation, checked once per pop
//	WithMaxExpansions(n)          // ErrExpansionLimit after n expansions without the goal
//	WithMissingEdgePolicy(p)      // greedy cost replay: raise (default) or zero-fill
//	WithOnExpand(fn)              // observe (expanded, priority) per expansion
//
// Error handling (sentinel errors):
//
//   - core.ErrNilGraph:          nil graph.
//   - core.ErrNegativeCost:      a successor edge with cost < 0 was generated.
//   - core.ErrMissingEdgeCost:   greedy replay met an edge the graph cannot price.
//   - ErrNilHeuristic:           AStar or GreedyBestFirst called without a heuristic.
//   - ErrNegativeHeuristic:      a heuristic returned h(n) < 0.
//   - ErrExpansionLimit:         MaxExpansions reached before the goal.
//   - ErrOptionViolation:        an option received an invalid value.
//   - heuristic.ErrUnknownState: propagated from table heuristics.
//
// Complexity:
//
//   - Time:  O((V + E) log E) on a finite graph, E heap pushes at most.
//   - Space: O(V + E) for cost, predecessor and closed maps plus the heap.
package bestfirst
