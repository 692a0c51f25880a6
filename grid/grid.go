// Package grid: Grid, the weighted terrain graph.

package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Grid is a rectangular terrain map. Cell value 0 is a wall; any positive
// value is the cost of entering the cell. A diagonal step costs √2 times the
// entered cell's value and may not cut a wall corner. Immutable once built.
type Grid struct {
	Width, Height int

	cells   [][]int
	conn    Connectivity
	offsets [][2]int
	minCost int
}

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCell.
// Complexity: O(W×H).
func New(values [][]int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	g := &Grid{Width: w, Height: h, cells: make([][]int, h)}
	for _, opt := range opts {
		opt(g)
	}

	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		g.cells[y] = make([]int, w)
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeCell, x, y, v)
			}
			if v > 0 && (g.minCost == 0 || v < g.minCost) {
				g.minCost = v
			}
			g.cells[y][x] = v
		}
	}
	g.offsets = offsets4
	if g.conn == Conn8 {
		g.offsets = offsets8
	}

	return g, nil
}

// Connectivity returns the neighbor rule.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Passable reports whether c is in bounds and not a wall.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Y][c.X] > 0
}

// Value returns the raw value of c, or 0 outside the grid.
func (g *Grid) Value(c Cell) int {
	if !g.InBounds(c) {
		return 0
	}

	return g.cells[c.Y][c.X]
}

// Has reports whether c is a passable cell.
func (g *Grid) Has(c Cell) bool { return g.Passable(c) }

// Successors returns the passable neighbors of c in N, (NE,) E, (SE,) S,
// (SW,) W, (NW) order. Walls have no successors.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Successors(c Cell) []core.Edge[Cell] {
	if !g.Passable(c) {
		return nil
	}
	out := make([]core.Edge[Cell], 0, len(g.offsets))
	for _, d := range g.offsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.Passable(n) {
			continue
		}
		cost := float64(g.cells[n.Y][n.X])
		if d[0] != 0 && d[1] != 0 {
			if !g.Passable(Cell{X: c.X + d[0], Y: c.Y}) || !g.Passable(Cell{X: c.X, Y: c.Y + d[1]}) {
				continue // corner cut
			}
			cost *= math.Sqrt2
		}
		out = append(out, core.Edge[Cell]{To: n, Cost: cost})
	}

	return out
}

// Table materializes the grid as a directed core.Table: every passable cell,
// row-major, with its Successors. Entering costs differ per cell, so edges are
// not symmetric.
// Complexity: O(W×H×d).
func (g *Grid) Table() (*core.Table[Cell], error) {
	t := core.NewTable[Cell](core.WithDirected(true))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if !g.Passable(c) {
				continue
			}
			t.AddState(c)
			for _, e := range g.Successors(c) {
				if err := t.AddEdge(c, e.To, e.Cost); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// Heuristic returns a consistent estimate towards goal: the cheapest cell
// value times the Manhattan distance under Conn4, or the octile distance
// under Conn8.
func (g *Grid) Heuristic(goal Cell) heuristic.Func[Cell] {
	scale := float64(g.minCost)

	return func(c Cell) (float64, error) {
		dx := math.Abs(float64(c.X - goal.X))
		dy := math.Abs(float64(c.Y - goal.Y))
		if g.conn == Conn8 {
			lo, hi := math.Min(dx, dy), math.Max(dx, dy)
			return scale * (hi - lo + math.Sqrt2*lo), nil
		}

		return scale * (dx + dy), nil
	}
}

// Check returns ErrBlocked unless both endpoints are passable.
func (g *Grid) Check(start, goal Cell) error {
	for _, c := range []Cell{start, goal} {
		if !g.Passable(c) {
			return fmt.Errorf("%w: %v", ErrBlocked, c)
		}
	}

	return nil
}
