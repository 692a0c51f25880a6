// Package route provides the Romania road-map problem: a materialized road
// graph, city coordinates, name aliases and the straight-line-distance
// heuristic.
//
// Graph returns a fresh undirected core.Table whose successor order is the
// road insertion order. SLD(goal) is the Euclidean distance to goal; it is
// consistent on this map, so A* with it returns the same cost as UCS.
package route

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/heuristic"
)

// ErrUnknownLocation is returned for a city name that is neither canonical
// nor a known alias.
var ErrUnknownLocation = errors.New("route: unknown location")

// Point is a planar coordinate in km.
type Point struct {
	X, Y float64
}

// Graph builds the undirected road graph. Each call returns a new Table.
func Graph() *core.Table[string] {
	g := core.NewTable[string]()
	for _, r := range roads {
		// road lengths are positive literals; AddEdge cannot fail here
		_ = g.AddEdge(r.From, r.To, r.Km)
	}

	return g
}

// Roads returns a copy of the road list in insertion order.
func Roads() []Road {
	out := make([]Road, len(roads))
	copy(out, roads)

	return out
}

// Cities returns every canonical city name, sorted.
func Cities() []string {
	out := make([]string, 0, len(locations))
	for c := range locations {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// Canonical resolves name, trimmed, to a canonical city name.
func Canonical(name string) (string, error) {
	n := strings.TrimSpace(name)
	if _, ok := locations[n]; ok {
		return n, nil
	}
	if c, ok := aliases[n]; ok {
		return c, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLocation, name)
}

// Location returns the coordinates of a city or alias.
func Location(name string) (Point, error) {
	c, err := Canonical(name)
	if err != nil {
		return Point{}, err
	}

	return locations[c], nil
}

// Distance is the straight-line distance between two cities.
func Distance(a, b string) (float64, error) {
	pa, err := Location(a)
	if err != nil {
		return 0, err
	}
	pb, err := Location(b)
	if err != nil {
		return 0, err
	}

	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y), nil
}

// SLD returns the straight-line-distance heuristic towards goal.
// Estimating an unknown city fails with both heuristic.ErrUnknownState and
// ErrUnknownLocation.
func SLD(goal string) (heuristic.Heuristic[string], error) {
	target, err := Location(goal)
	if err != nil {
		return nil, err
	}

	return heuristic.Func[string](func(city string) (float64, error) {
		p, err := Location(city)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", heuristic.ErrUnknownState, err)
		}
		return math.Hypot(p.X-target.X, p.Y-target.Y), nil
	}), nil
}
