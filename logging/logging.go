// Package logging builds the zerolog logger used by the CLI and benchmark.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvsearch/config"
)

// New returns a logger writing to w (os.Stderr when nil): human-readable
// when cfg.Pretty, JSON otherwise. An unknown level falls back to info.
// Timestamps are Unix milliseconds.
func New(cfg config.Logging, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if w == nil {
		w = os.Stderr
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
