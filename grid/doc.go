// Package grid models weighted terrain maps as search graphs.
//
// What:
//
//   - Grid wraps a rectangular [][]int: 0 is a wall, a positive value is the
//     cost of stepping onto the cell.
//   - Conn4 moves orthogonally; Conn8 adds diagonals at √2 times the cost and
//     never cuts a wall corner.
//   - Grid implements core.Graph directly (lazy) and Table materializes it.
//   - Heuristic gives a consistent Manhattan or octile estimate scaled by the
//     cheapest cell, so AStar stays optimal.
//   - Components and Connected find regions of mutually reachable cells.
//   - Parse reads a text map ('#' wall, '.' or 1-9 cost, S start, G goal);
//     Render draws a path back onto it.
//
// Complexity:
//
//   - Successors: O(d), d = 4 or 8.
//   - Components, Table: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNegativeCell: bad input grid.
//   - ErrBlocked: start or goal is a wall or out of bounds.
//   - ErrParse: malformed text map.
package grid
