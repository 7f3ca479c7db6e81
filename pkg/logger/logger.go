// Package logger configures the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger. Unknown levels fall back to info.
func Setup(level string, pretty bool) {
	Init(os.Stderr, level, pretty)
}

// Init is Setup with an explicit writer.
func Init(out io.Writer, level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// For returns a child of the global logger tagged with component.
func For(component string) *zerolog.Logger {
	l := log.With().Str("component", component).Logger()
	return &l
}
