package csp_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/csp"
)

func ExampleColorBolivia() {
	colors, _ := csp.ColorBolivia(csp.Colors)
	for _, d := range csp.Departments[:4] {
		fmt.Println(d, colors[d])
	}
	// Output:
	// Pando red
	// Beni yellow
	// La Paz green
	// Oruro yellow
}
