// Package bfs provides breadth-first search between two states of a core.Graph.
//
// What
//
//   - Explores paths in non-decreasing edge count from the start state.
//   - Each frontier entry is a full path plus its accumulated cost, so no
//     predecessor map is kept. Memory grows with the sum of path lengths,
//     which is fine for the small graphs BFS is meant for.
//   - A state is marked visited when it is enqueued; it is never enqueued twice.
//   - The goal is tested when dequeued. Result.Expanded counts dequeued paths,
//     goal included.
//
// Guarantees
//
//   - The returned path has the minimum number of edges among all start→goal
//     paths. Edge costs are summed into Result.Cost but do not steer the search.
//   - Successors are enqueued in the order the graph returns them, so results
//     are reproducible for a deterministic graph.
//   - An unreachable goal yields core.Unreachable(expanded): nil path, +Inf cost.
//
// Complexity (V = reachable states, E = their edges, L = path length)
//
//   - Time:   O(V·L + E)
//   - Memory: O(V·L)
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeue.
//   - WithMaxExpansions(n):    ErrExpansionLimit after n expansions without the goal.
//   - WithMaxDepth(d):         never extend a path beyond d edges.
//   - WithOnExpand(fn):        observe (expanded, depth) per dequeue.
//
// Errors
//
//   - core.ErrNilGraph        if the graph is nil.
//   - core.ErrNegativeCost    if a successor edge has cost < 0.
//   - ErrOptionViolation      if an Option is invalid (negative limit).
//   - ErrExpansionLimit       if MaxExpansions is reached.
//   - ctx.Err()               if the context is cancelled.
package bfs
