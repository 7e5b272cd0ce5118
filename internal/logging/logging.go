// Package logging wires up the zerolog logger shared by the
// orchestrator and CLI (SPEC_FULL.md §2). The teacher
// (_examples/cbarrick-evo) has no logging beyond ad hoc fmt.Printf in
// example/queens.go; this package's call shape — leveled,
// structured, one Msg() per event — is grounded on
// other_examples/8535a652_bbak-mcs-mcp__internal-simulation-engine.go.go,
// a discrete-event-adjacent Monte-Carlo engine that logs the same way
// ("log.Info().Int(...).Interface(...).Msg(...)").
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-friendly zerolog.Logger writing to w at the
// given level. Pass os.Stderr and zerolog.InfoLevel for normal CLI use.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Default returns the package-wide logger used when the caller has not
// configured one explicitly (e.g. library use outside the CLI).
func Default() zerolog.Logger {
	return New(os.Stderr, zerolog.InfoLevel)
}

// ParseLevel maps a CLI --log-level string to a zerolog.Level,
// defaulting to InfoLevel for an empty or unrecognised string.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
