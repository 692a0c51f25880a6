package main

import (
	"context"
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/search"
)

type puzzleArgs struct {
	algo      string
	heuristic string
	board     string
	size      int
	shuffle   int
	seed      int64
	maxExp    int
	show      bool
}

func newPuzzleCmd() *commander.Command {
	cmd := &commander.Command{
		UsageLine: "puzzle [options]",
		Short:     "solve a sliding-tile puzzle",
		Long: `
Solves an n×n sliding puzzle towards 1…n²-1 followed by the blank. The board
is given with -board (0 is the blank) or generated by shuffling the goal.

	$ lvsearch puzzle -board "(6,8,3,1,2,4,7,0,5)" -h linear_conflict
	$ lvsearch puzzle -size 4 -shuffle 60 -seed 3 -algo greedy
`,
		Flag: *flag.NewFlagSet("puzzle", flag.ExitOnError),
	}
	c := addCommonFlags(&cmd.Flag)
	var a puzzleArgs
	cmd.Flag.StringVar(&a.algo, "algo", "a*", "bfs, dfs, ucs, greedy or a*")
	cmd.Flag.StringVar(&a.heuristic, "h", puzzle.HeuristicManhattan, "hamming, manhattan, linear_conflict or gaschnig")
	cmd.Flag.StringVar(&a.board, "board", "", "start board, e.g. (1,2,3,4,5,6,7,0,8)")
	cmd.Flag.IntVar(&a.size, "size", 3, "side length of a shuffled board")
	cmd.Flag.IntVar(&a.shuffle, "shuffle", 40, "random moves applied to the goal")
	cmd.Flag.Int64Var(&a.seed, "seed", 1, "shuffle seed")
	cmd.Flag.IntVar(&a.maxExp, "max", 1000000, "expansion cap, 0 for none")
	cmd.Flag.BoolVar(&a.show, "show", false, "draw every board on the path")

	cmd.Run = func(_ *commander.Command, _ []string) error {
		_, logger, err := c.setup()
		if err != nil {
			return err
		}
		return runPuzzle(a, search.WithLogger(logger))
	}

	return cmd
}

func runPuzzle(a puzzleArgs, opts ...search.SolverOption) error {
	algo, err := search.ParseAlgorithm(a.algo)
	if err != nil {
		return err
	}

	var start puzzle.Board
	if a.board != "" {
		if start, err = puzzle.ParseBoard(a.board); err != nil {
			return err
		}
	} else {
		if a.size < 2 || a.size > puzzle.MaxSize {
			return fmt.Errorf("%w: size %d", puzzle.ErrNotSquare, a.size)
		}
		start = puzzle.Shuffle(a.size, a.shuffle, puzzle.NewRand(a.seed))
	}
	goal := puzzle.Goal(start.Size())
	if err = puzzle.RequireSolvable(start, goal); err != nil {
		return err
	}
	h, err := puzzle.NewHeuristic(a.heuristic, goal)
	if err != nil {
		return err
	}

	opts = append(opts, search.WithMaxExpansions(a.maxExp))
	s, err := search.NewSolver[puzzle.Board](puzzle.NewGraph(), algo, h, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "start %v\n%s", start, puzzle.Render(start))
	rep, err := s.Solve(context.Background(), start, goal)
	if err != nil {
		return err
	}

	for i := 1; i < len(rep.Path); i++ {
		dir, tile := puzzle.Move(rep.Path[i-1], rep.Path[i])
		fmt.Fprintf(stdout, "%3d. %s moves tile %d\n", i, dir, tile)
		if a.show {
			fmt.Fprint(stdout, puzzle.Render(rep.Path[i]))
		}
	}
	label := algo.String()
	if algo.Informed() {
		label += "/" + a.heuristic
	}
	fmt.Fprintf(stdout, "%s: %d moves, expanded %d, %s\n", label, rep.Steps(), rep.Expanded, rep.Duration)

	return nil
}
