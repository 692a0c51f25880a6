// Package core provides the graph abstraction consumed by every search in
// lvsearch, together with the Result type and the path utilities.
//
// A state graph G maps a State to its successors and the cost of reaching each:
//
//	successors(s) → [(s₁, c₁), (s₂, c₂), …]    cᵢ ≥ 0
//
// Two realizations are provided:
//
//   - Table[S]: materialized. The whole mapping is built ahead of time with
//     AddState/AddEdge. Successor order is insertion order, lookups of unknown
//     states return no successors, and Cost(u,v) is O(1). Undirected by default
//     (WithDirected(true) for one-way transitions).
//   - LazyGraph[S]: a successor function evaluated on demand. Needed for state
//     spaces too large to enumerate (sliding-tile boards). Has() always reports
//     true since successors are valid by construction.
//
// Any type with a deterministic Successors method satisfies Graph[S]; the
// optional Container and CostLookup interfaces let callers check membership
// and let cost replay avoid scanning successor lists.
//
// Path utilities:
//
//	Reconstruct(parent, goal)         // walk predecessor links, ErrBrokenChain on cycles
//	PathCost(g, path, policy)         // replay edge costs, ErrMissingEdgeCost or zero-fill
//	EdgeCost(g, u, v)                 // u→v, falling back to v→u
//
// Result:
//
//	Result{Path, Cost, Expanded}; an unreachable goal is the normal negative
//	result Unreachable(expanded) = {nil, +Inf, expanded}, never an error.
//
// Thread safety:
//
//   - Table guards its maps with a sync.RWMutex; building and searching may overlap.
//   - LazyGraph carries no state; its function must not keep a shared mutable cache.
package core
