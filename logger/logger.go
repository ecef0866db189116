// Package logger provides a configurable logger for the whole module.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

// Logger returns the module logger.
func Logger() zerolog.Logger {
	return logger
}

// Set replaces the module logger.
func Set(l zerolog.Logger) {
	logger = l
}

// SetOutput changes the destination of the module logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Disable silences the module logger.
func Disable() {
	logger = zerolog.Nop()
}
