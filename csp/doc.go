// Package csp solves small finite-domain constraint satisfaction problems by
// chronological backtracking.
//
// Backtrack takes the variables in a fixed order, tries each domain value in
// order against a Constraint and undoes the latest choice on a dead end. There
// is no variable-ordering heuristic, forward checking or arc consistency.
//
// NeighborsDiffer is the map-colouring constraint; ColorBolivia applies it to
// the nine departments of Bolivia.
package csp
