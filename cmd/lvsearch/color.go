package main

import (
	"fmt"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/lvsearch/csp"
)

func newColorCmd() *commander.Command {
	cmd := &commander.Command{
		UsageLine: "color [options]",
		Short:     "colour the departments of Bolivia",
		Long: `
Assigns a colour to each department so that no two bordering departments
share one.

	$ lvsearch color -colors red,yellow,green
`,
		Flag: *flag.NewFlagSet("color", flag.ExitOnError),
	}
	colors := cmd.Flag.String("colors", strings.Join(csp.Colors, ","), "comma-separated palette")

	cmd.Run = func(_ *commander.Command, _ []string) error {
		return runColor(strings.Split(*colors, ","))
	}

	return cmd
}

func runColor(palette []string) error {
	got, err := csp.ColorBolivia(palette)
	if err != nil {
		return err
	}
	for _, d := range csp.Departments {
		fmt.Fprintf(stdout, "%-11s %s\n", d, got[d])
	}

	return nil
}
