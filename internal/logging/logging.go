// Package logging builds the per-invocation zerolog logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable lines to w.
// Debug enables debug events; otherwise only warnings and errors pass.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	consoleWriter := zerolog.NewConsoleWriter()
	consoleWriter.Out = w
	consoleWriter.TimeFormat = time.DateTime
	consoleWriter.NoColor = true

	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Logger()
}
