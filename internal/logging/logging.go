// Package logging configures the diagnostic logger. User-facing output is
// printed directly by commands; this logger carries debug detail to stderr.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Verbose enables debug output;
// otherwise only warnings and errors are shown.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
