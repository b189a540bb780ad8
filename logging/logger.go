package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing to stderr at the given level.
// level can be "debug", "info", "warn", "error"; anything else means info.
// Logs go to stderr so notification output on stdout stays clean.
func New(level string) zerolog.Logger {
	l := zerolog.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		l = zerolog.DebugLevel
	case "warn":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(l)
}
