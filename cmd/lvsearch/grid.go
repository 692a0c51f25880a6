package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/grid"
	"github.com/katalvlaran/lvsearch/search"
)

func newGridCmd() *commander.Command {
	cmd := &commander.Command{
		UsageLine: "grid [options] MAPFILE",
		Short:     "find a path on a text terrain map",
		Long: `
Reads a map with '#' walls, '.' or 1-9 entry costs, one S and one G, then
draws the path found.

	$ lvsearch grid -algo a* -diag maps/swamp.txt
`,
		Flag: *flag.NewFlagSet("grid", flag.ExitOnError),
	}
	c := addCommonFlags(&cmd.Flag)
	algo := cmd.Flag.String("algo", "a*", "bfs, dfs, ucs, greedy or a*")
	diag := cmd.Flag.Bool("diag", false, "allow diagonal moves")

	cmd.Run = func(_ *commander.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("grid: want one MAPFILE, got %d arguments", len(args))
		}
		_, logger, err := c.setup()
		if err != nil {
			return err
		}
		conn := grid.Conn4
		if *diag {
			conn = grid.Conn8
		}
		return runGrid(*algo, args[0], conn, search.WithLogger(logger))
	}

	return cmd
}

func runGrid(algoName, path string, conn grid.Connectivity, opts ...search.SolverOption) error {
	algo, err := search.ParseAlgorithm(algoName)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	m, err := grid.Parse(f, grid.WithConnectivity(conn))
	_ = f.Close()
	if err != nil {
		return err
	}
	if !m.Grid.Connected(m.Start, m.Goal) {
		fmt.Fprintf(stdout, "no path from %v to %v\n", m.Start, m.Goal)
		return nil
	}

	s, err := search.NewSolver[grid.Cell](m.Grid, algo, m.Grid.Heuristic(m.Goal), opts...)
	if err != nil {
		return err
	}
	rep, err := s.Solve(context.Background(), m.Start, m.Goal)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, m.Grid.Render(rep.Path))
	fmt.Fprintf(stdout, "%s: %d moves, cost %.2f, expanded %d\n", algo, rep.Steps(), rep.Cost, rep.Expanded)

	return nil
}
