package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var globalLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger. Console output in development, JSON
// everywhere else.
func Init(level string, console bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if console {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	globalLogger = zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "delstarford-site").
		Logger()
}

// Global returns the global logger.
func Global() *zerolog.Logger {
	return &globalLogger
}
