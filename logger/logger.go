package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the service logger: pretty console output in dev mode, JSON otherwise.
func New(devMode bool) zerolog.Logger {
	return NewWithWriter(os.Stdout, devMode)
}

func NewWithWriter(w io.Writer, devMode bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if devMode {
		return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
			Level(zerolog.DebugLevel).
			With().
			Timestamp().
			Caller().
			Logger()
	}

	return zerolog.New(w).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}
