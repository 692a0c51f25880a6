package route_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/bestfirst"
	"github.com/katalvlaran/lvsearch/route"
)

// ExampleSLD runs A* from Arad to Bucharest with the straight-line-distance
// heuristic.
func ExampleSLD() {
	g := route.Graph()
	h, err := route.SLD("Bucharest")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bestfirst.AStar[string](g, "Arad", "Bucharest", h)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Path)
	fmt.Println("cost:", res.Cost, "expanded:", res.Expanded)
	// Output:
	// [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest]
	// cost: 418 expanded: 6
}

// ExampleCanonical resolves alternative spellings.
func ExampleCanonical() {
	for _, in := range []string{"Rimnicu", "Timișoara", "Bucarest"} {
		c, _ := route.Canonical(in)
		fmt.Println(c)
	}
	// Output:
	// Rimnicu Vilcea
	// Timisoara
	// Bucharest
}
