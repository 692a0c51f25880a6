package main

import (
	"fmt"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/minimax"
)

func newMinimaxCmd() *commander.Command {
	cmd := &commander.Command{
		UsageLine: "minimax [options]",
		Short:     "evaluate the demo two-ply game tree",
		Flag:      *flag.NewFlagSet("minimax", flag.ExitOnError),
	}
	player := cmd.Flag.String("player", "max", "player to move at the root: max or min")

	cmd.Run = func(_ *commander.Command, _ []string) error {
		return runMinimax(*player)
	}

	return cmd
}

// demoTree is the textbook tree A → B, C, D with three leaves each.
func demoTree() *minimax.Tree {
	t := minimax.NewTree().
		AddChildren("A", "B", "C", "D").
		AddChildren("B", "B1", "B2", "B3").
		AddChildren("C", "C1", "C2", "C3").
		AddChildren("D", "D1", "D2", "D3")
	for leaf, v := range map[string]float64{
		"B1": 3, "B2": 12, "B3": 8,
		"C1": 2, "C2": 4, "C3": 6,
		"D1": 14, "D2": 5, "D3": 2,
	} {
		t.SetUtility(leaf, v)
	}

	return t
}

func runMinimax(playerName string) error {
	var p minimax.Player
	switch strings.ToLower(playerName) {
	case "max":
		p = minimax.Max
	case "min":
		p = minimax.Min
	default:
		return fmt.Errorf("minimax: unknown player %q", playerName)
	}

	t := demoTree()
	if err := t.Validate("A"); err != nil {
		return err
	}
	labels := make(map[string]float64)
	v, err := minimax.Evaluate[string](t, "A", p, labels)
	if err != nil {
		return err
	}
	for _, n := range t.Successors("A") {
		fmt.Fprintf(stdout, "%s = %g\n", n, labels[n])
	}
	fmt.Fprintf(stdout, "A (%s) = %g\n", p, v)

	return nil
}
