package main

import (
	"context"
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/river"
	"github.com/katalvlaran/lvsearch/search"
)

func newRiverCmd() *commander.Command {
	cmd := &commander.Command{
		UsageLine: "river [options]",
		Short:     "solve the villagers-and-guards river crossing",
		Long: `
Moves every villager and guard to the right bank with a two-seat boat, never
leaving villagers outnumbered. Informed algorithms are not available here.

	$ lvsearch river -algo dfs
`,
		Flag: *flag.NewFlagSet("river", flag.ExitOnError),
	}
	c := addCommonFlags(&cmd.Flag)
	algo := cmd.Flag.String("algo", "bfs", "bfs, dfs or ucs")
	villagers := cmd.Flag.Int("villagers", 3, "number of villagers")
	guards := cmd.Flag.Int("guards", 3, "number of guards")

	cmd.Run = func(_ *commander.Command, _ []string) error {
		_, logger, err := c.setup()
		if err != nil {
			return err
		}
		return runRiver(*algo, river.Rules{Villagers: *villagers, Guards: *guards}, search.WithLogger(logger))
	}

	return cmd
}

func runRiver(algoName string, rules river.Rules, opts ...search.SolverOption) error {
	algo, err := search.ParseAlgorithm(algoName)
	if err != nil {
		return err
	}
	if algo.Informed() {
		return fmt.Errorf("%w: %s has no heuristic for the river crossing", search.ErrMissingHeuristic, algo)
	}
	g, err := rules.Graph()
	if err != nil {
		return err
	}

	s, err := search.NewSolver[river.State](g, algo, nil, opts...)
	if err != nil {
		return err
	}
	rep, err := s.Solve(context.Background(), rules.Initial(), rules.Goal())
	if err != nil {
		return err
	}
	if !rep.Found() {
		fmt.Fprintf(stdout, "%s: no crossing exists for %d villagers and %d guards (expanded %d)\n",
			algo, rules.Villagers, rules.Guards, rep.Expanded)
		return nil
	}

	for i, st := range rep.Path {
		fmt.Fprintf(stdout, "%2d %v  %s\n", i, st, rules.Render(st))
	}
	fmt.Fprintf(stdout, "%s: %d crossings, expanded %d\n", algo, rep.Steps(), rep.Expanded)

	return nil
}
