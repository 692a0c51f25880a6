// Package river models the villagers-and-guards river crossing as a
// materialized search graph.
//
// A State counts villagers and guards on the left bank plus the boat side.
// The boat carries one or two people; a bank that holds any villager must not
// hold more guards than villagers. Rules parameterises the totals (default 3/3)
// and builds the directed graph consumed by bfs, dfs or bestfirst:
//
//	r := river.DefaultRules()
//	g, _ := r.Graph()
//	res, _ := bfs.BFS[river.State](g, r.Initial(), r.Goal())
//
// Every crossing costs 1, so a path's cost equals its number of crossings.
package river
