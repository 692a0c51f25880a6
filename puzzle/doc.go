// Package puzzle models the n×n sliding-tile puzzle as a lazily generated
// search graph.
//
// State:
//
//   - Board is an immutable, comparable value (side length plus one byte per
//     cell, 0 = blank). It is used directly as the search state.
//   - NewBoard/MustBoard/ParseBoard validate input; Goal(n) is 1…n²-1, 0.
//
// Graph:
//
//   - Successors swaps the blank with each in-bounds neighbour in up, down,
//     left, right order, each move at cost 1. NewGraph wraps it as a
//     core.LazyGraph; nothing is precomputed, any reachable board can be
//     queried.
//
// Heuristics (see heuristics.go): Hamming, Manhattan, LinearConflict and
// Gaschnig, selectable by name through NewHeuristic. Evaluating a board of the
// wrong size fails with heuristic.ErrUnknownState and ErrSizeMismatch.
//
// Instances:
//
//   - Solvable checks inversion parity (plus blank row for even n).
//   - Shuffle walks randomly from the goal, so its output is always solvable.
//   - NewRand and DeriveSeed provide deterministic, per-worker streams.
//
// Presentation: Move names the blank direction and moved tile of one step;
// Render draws a board as text.
package puzzle
