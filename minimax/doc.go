// Package minimax evaluates two-player zero-sum game trees.
//
// Evaluate is the plain recursive MAX/MIN rule without pruning: terminal nodes
// return their utility, MAX nodes the largest child value and MIN nodes the
// smallest, the player alternating at each ply. Any type implementing Game can
// be evaluated; Tree is a ready-made table-driven implementation whose
// Validate rejects cyclic definitions before evaluation.
package minimax
