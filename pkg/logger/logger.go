package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// SetLevel sets the minimum level of messages that get written.
// Accepted values are the zerolog level names, e.g. "debug", "info", "error".
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level %q: %w", level, err)
	}

	logger = logger.Level(lvl)

	return nil
}

// Info logs the provided message at [zerolog.InfoLevel].
func Info(msg string) {
	logger.Info().Msg(msg)
}

// InfoFields logs the provided message with additional fields at [zerolog.InfoLevel].
func InfoFields(msg string, fields map[string]any) {
	logger.Info().Fields(fields).Msg(msg)
}

// Debug logs the provided message at [zerolog.DebugLevel].
func Debug(msg string) {
	logger.Debug().Msg(msg)
}

// Error logs the provided message at [zerolog.ErrorLevel].
func Error(msg string) {
	logger.Error().Msg(msg)
}

// ErrorFields logs the provided message with additional fields at [zerolog.ErrorLevel].
func ErrorFields(msg string, fields map[string]any) {
	logger.Error().Fields(fields).Msg(msg)
}

// SetOutput redirects log output to w.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}
