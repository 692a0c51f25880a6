package main

import (
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/logging"
)

// common holds the flags every subcommand accepts.
type common struct {
	config  *string
	verbose *bool
}

func addCommonFlags(fs *flag.FlagSet) common {
	return common{
		config:  fs.String("config", "", "YAML settings file (default $LVSEARCH_CONFIG)"),
		verbose: fs.Bool("v", false, "debug logging"),
	}
}

// setup loads settings and builds the logger.
func (c common) setup() (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(*c.config)
	if err != nil {
		return cfg, zerolog.Nop(), err
	}
	if *c.verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, logging.New(cfg.Logging, nil), nil
}

// flagGiven reports whether name was set on the command line.
func flagGiven(cmd *commander.Command, name string) bool {
	given := false
	cmd.Flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})

	return given
}
