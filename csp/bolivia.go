// Package csp: the Bolivian departments map-colouring instance.

package csp

// Departments lists the nine departments of Bolivia in assignment order.
var Departments = []string{
	"Pando", "Beni", "La Paz", "Oruro", "Cochabamba",
	"Potosí", "Chuquisaca", "Tarija", "Santa Cruz",
}

// Borders lists each shared border once.
var Borders = map[string][]string{
	"Pando":      {"La Paz", "Beni"},
	"Beni":       {"La Paz", "Cochabamba", "Santa Cruz"},
	"La Paz":     {"Oruro", "Cochabamba"},
	"Oruro":      {"Cochabamba", "Potosí"},
	"Cochabamba": {"Santa Cruz", "Chuquisaca", "Potosí"},
	"Potosí":     {"Chuquisaca", "Tarija"},
	"Chuquisaca": {"Santa Cruz", "Tarija"},
}

// Colors is the default palette.
var Colors = []string{"red", "yellow", "green"}

// ColorBolivia colours the departments with palette so that no two bordering
// departments share a colour. A palette that is too small fails with
// ErrNoAssignment.
func ColorBolivia(palette []string) (map[string]string, error) {
	domains := make(map[string][]string, len(Departments))
	for _, d := range Departments {
		domains[d] = palette
	}

	return Backtrack[string, string](Departments, domains, NeighborsDiffer[string, string](Borders))
}
