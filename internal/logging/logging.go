// Package logging builds the zerolog.Logger every process in this platform
// starts with. Same dual-mode shape as the teacher's setupLogger: pretty
// console output in development, structured JSON everywhere else.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger for service, at levelStr, for environment
// ("development" or anything else, treated as production).
func New(service, levelStr, environment string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(level).
			With().
			Timestamp().
			Caller().
			Str("service", service).
			Logger()
	}

	return zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Str("environment", environment).
		Logger()
}
