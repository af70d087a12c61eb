// Package logging sets up the diagnostic sink. The terminal belongs
// to the TUI, so logs go to a file; listing failures and watcher
// errors land here instead of interrupting the view.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable lines to the file at
// path, creating it if needed. An empty path or an unopenable file
// yields a no-op logger: diagnostics are best-effort by design and
// must never stop the explorer from starting.
func New(path string, debug bool) zerolog.Logger {
	if path == "" {
		return Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Nop()
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}
