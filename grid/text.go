// Package grid: the text map format.

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Map is a parsed text map.
type Map struct {
	Grid  *Grid
	Start Cell
	Goal  Cell
}

// Parse reads a text map, one row per line:
//
//	#       wall
//	.       cost 1
//	1-9     cost 1 to 9
//	S, G    start and goal, cost 1
//
// Blank lines are skipped. Exactly one S and one G are required.
func Parse(r io.Reader, opts ...Option) (Map, error) {
	var (
		rows       [][]int
		start, end []Cell
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		y := len(rows)
		row := make([]int, 0, len(line))
		for x, ch := range []byte(line) {
			switch {
			case ch == '#':
				row = append(row, 0)
			case ch == '.':
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == 'S':
				start = append(start, Cell{X: x, Y: y})
				row = append(row, 1)
			case ch == 'G':
				end = append(end, Cell{X: x, Y: y})
				row = append(row, 1)
			default:
				return Map{}, fmt.Errorf("%w: unexpected %q at %d,%d", ErrParse, ch, x, y)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return Map{}, err
	}
	if len(start) != 1 || len(end) != 1 {
		return Map{}, fmt.Errorf("%w: want one S and one G, got %d and %d", ErrParse, len(start), len(end))
	}

	g, err := New(rows, opts...)
	if err != nil {
		return Map{}, err
	}

	return Map{Grid: g, Start: start[0], Goal: end[0]}, nil
}

// Render draws the grid with path cells marked '*' (start 'S', goal 'G').
func (g *Grid) Render(path []Cell) string {
	mark := make(map[Cell]byte, len(path))
	for _, c := range path {
		mark[c] = '*'
	}
	if len(path) > 0 {
		mark[path[0]] = 'S'
		mark[path[len(path)-1]] = 'G'
	}

	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			v := g.cells[y][x]
			switch m, ok := mark[c]; {
			case ok:
				sb.WriteByte(m)
			case v == 0:
				sb.WriteByte('#')
			case v == 1:
				sb.WriteByte('.')
			case v <= 9:
				sb.WriteByte(byte('0' + v))
			default:
				sb.WriteByte('+')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
