// Package logging configures the structured logger for invctl.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Verbose lowers the level to debug and is what -v toggles.
	Verbose bool
	// Level overrides the default level when Verbose is off
	// (trace, debug, info, warn, error).
	Level string
	// NoColor disables console coloring.
	NoColor bool
}

// New creates a console logger writing to stderr, so log lines never mix
// with table/JSON/YAML output on stdout.
func New(opts Options) zerolog.Logger {
	var w io.Writer = zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: opts.NoColor,
	}

	level := parseLevel(opts.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
