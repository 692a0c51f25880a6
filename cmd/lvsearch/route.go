package main

import (
	"context"
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/route"
	"github.com/katalvlaran/lvsearch/search"
)

func newRouteCmd() *commander.Command {
	cmd := &commander.Command{
		UsageLine: "route [options] FROM TO",
		Short:     "find a route between two cities of the Romania map",
		Long: `
Searches the Romania road map. Informed algorithms use the straight-line
distance to TO as heuristic.

	$ lvsearch route -algo greedy Arad Bucharest
`,
		Flag: *flag.NewFlagSet("route", flag.ExitOnError),
	}
	c := addCommonFlags(&cmd.Flag)
	algo := cmd.Flag.String("algo", "a*", "bfs, dfs, ucs, greedy or a*")

	cmd.Run = func(_ *commander.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("route: want FROM and TO, got %d arguments", len(args))
		}
		_, logger, err := c.setup()
		if err != nil {
			return err
		}
		return runRoute(*algo, args[0], args[1], search.WithLogger(logger))
	}

	return cmd
}

func runRoute(algoName, fromName, toName string, opts ...search.SolverOption) error {
	algo, err := search.ParseAlgorithm(algoName)
	if err != nil {
		return err
	}
	from, err := route.Canonical(fromName)
	if err != nil {
		return err
	}
	to, err := route.Canonical(toName)
	if err != nil {
		return err
	}
	h, err := route.SLD(to)
	if err != nil {
		return err
	}

	g := route.Graph()
	s, err := search.NewSolver[string](g, algo, h, opts...)
	if err != nil {
		return err
	}
	rep, err := s.Solve(context.Background(), from, to)
	if err != nil {
		return err
	}
	if !rep.Found() {
		fmt.Fprintf(stdout, "%s: no route from %s to %s (expanded %d)\n", algo, from, to, rep.Expanded)
		return nil
	}

	_, steps, err := core.PathCost[string](g, rep.Path, core.RaiseOnMissing)
	if err != nil {
		return err
	}
	for _, st := range steps {
		fmt.Fprintf(stdout, "  %-16s -> %-16s %4.0f km\n", st.From, st.To, st.Cost)
	}
	fmt.Fprintf(stdout, "%s: %d roads, %.0f km, expanded %d, %s\n",
		algo, rep.Steps(), rep.Cost, rep.Expanded, rep.Duration)

	return nil
}
