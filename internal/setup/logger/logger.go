package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a JSON logger for the background workers. Interactive binaries
// use a console writer instead.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
