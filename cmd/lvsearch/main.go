// Command lvsearch runs the search algorithms on the bundled problems and
// benchmarks them on random sliding puzzles.
//
//	lvsearch route   [-algo a*] FROM TO
//	lvsearch puzzle  [-algo a*] [-h manhattan] [-board "(1,2,...)"|-size 3 -shuffle 40 -seed 1]
//	lvsearch river   [-algo bfs] [-villagers 3] [-guards 3]
//	lvsearch bench   [-config lvsearch.yaml] [-count N] [-out results.csv]
//	lvsearch color   [-colors red,yellow,green]
//	lvsearch minimax [-player max]
//	lvsearch grid    [-algo a*] [-diag] MAPFILE
//
// Settings come from the YAML file named by -config or LVSEARCH_CONFIG, then
// LVSEARCH_* environment variables.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
)

// stdout receives command output; tests swap it.
var stdout io.Writer = os.Stdout

func newApp() *commander.Command {
	return &commander.Command{
		UsageLine: "lvsearch <command> [options]",
		Short:     "informed and uninformed graph search",
		Subcommands: []*commander.Command{
			newRouteCmd(),
			newPuzzleCmd(),
			newRiverCmd(),
			newBenchCmd(),
			newColorCmd(),
			newMinimaxCmd(),
			newGridCmd(),
		},
	}
}

func main() {
	if err := newApp().Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "lvsearch: %v\n", err)
		os.Exit(1)
	}
}
