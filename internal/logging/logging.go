// Package logging builds the zerolog logger used for a single xenon invocation.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options configures logger construction.
type Options struct {
	// Out is the destination. Defaults to os.Stderr.
	Out io.Writer
	// Debug enables debug-level output with caller information.
	Debug bool
	// Quiet restricts output to errors.
	Quiet bool
	// NoColor disables ANSI colors in console output.
	NoColor bool
	// JSON writes structured JSON lines instead of console output.
	JSON bool
}

// Level returns the minimum level implied by the options.
// Quiet wins over Debug.
func (o Options) Level() zerolog.Level {
	switch {
	case o.Quiet:
		return zerolog.ErrorLevel
	case o.Debug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a logger scoped to one invocation. No global state is touched.
func New(opts Options) zerolog.Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	var w io.Writer = out
	if !opts.JSON {
		w = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    opts.NoColor,
			TimeFormat: time.Kitchen,
		}
	}

	ctx := zerolog.New(w).Level(opts.Level()).With().Timestamp()
	if opts.Debug {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Component returns a child logger tagged with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
