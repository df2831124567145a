// Package logging constructs the structured logger. Log output is
// operational (data-quality warnings, bootstrap events, checkout audit
// lines); user-facing rendering goes through the CLI adapters instead.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger at the given level. Unknown levels fall back
// to warn so a typo in CHEMIST_LOG_LEVEL never silences persistence errors.
func New(level string) zerolog.Logger {
	return NewWithOutput(level, os.Stderr)
}

// NewWithOutput is New with an explicit output, for tests.
func NewWithOutput(level string, out io.Writer) zerolog.Logger {
	lvl := parseLevel(level)
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
}

func parseLevel(value string) zerolog.Level {
	s := strings.ToLower(strings.TrimSpace(value))
	if s == "" {
		return zerolog.WarnLevel
	}
	if lvl, err := zerolog.ParseLevel(s); err == nil {
		return lvl
	}
	return zerolog.WarnLevel
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
