// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// Configure sets the global log level and writes human-readable output to w
// (stderr when w is nil). Unknown levels fall back to DefaultLevel and the
// parse error is returned after the logger is usable.
func Configure(level string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()

	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
