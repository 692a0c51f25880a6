// Package dfs provides depth-first search between two states of a core.Graph
// and directed cycle detection.
//
// DFS
//
//   - The frontier is a LIFO stack of full paths with their accumulated cost.
//   - Successors are pushed in graph order, so the last successor is popped
//     first.
//   - Cycle avoidance scans the candidate's own partial path, O(path length)
//     per successor. There is no global visited set: a state reachable through
//     several simple paths may be expanded once per path.
//   - The goal is tested when popped. Result.Expanded counts popped paths.
//
// DFS is not optimal (neither in edges nor in cost) and its running time is
// exponential in the worst case. It is meant for small graphs; use
// WithMaxExpansions or WithMaxDepth to bound it elsewhere.
//
// FindCycle
//
//   - Three-colour DFS (White/Gray/Black) from the given roots over directed
//     successors. Returns the first back-edge cycle as [v, …, v].
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per pop.
//   - WithMaxExpansions(n):    ErrExpansionLimit after n pops without the goal.
//   - WithMaxDepth(d):         never extend a path beyond d edges.
//   - WithOnExpand(fn):        observe (expanded, depth) per pop.
//
// Errors
//
//   - core.ErrNilGraph, core.ErrNegativeCost
//   - ErrOptionViolation, ErrExpansionLimit
//   - ErrCycleDetected is provided for callers of FindCycle that need an error.
package dfs
