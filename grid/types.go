// Package grid defines Cell, Connectivity, options and sentinel errors.

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCell indicates a cell value below zero.
	ErrNegativeCell = errors.New("grid: cell values must be >= 0")
	// ErrBlocked indicates a start or goal on a wall or outside the grid.
	ErrBlocked = errors.New("grid: cell is not passable")
	// ErrParse indicates a malformed text map.
	ErrParse = errors.New("grid: malformed map")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate and the search state of a Grid.
type Cell struct {
	X, Y int
}

// String renders the cell as x,y.
func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Option configures a Grid.
type Option func(*Grid)

// WithConnectivity selects Conn4 (default) or Conn8.
func WithConnectivity(conn Connectivity) Option {
	return func(g *Grid) { g.conn = conn }
}
