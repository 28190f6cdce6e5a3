// Package logging configures slog handlers for the luactor CLI and runtime.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Format selects the handler implementation: "text" renders with
// charmbracelet/log, "json" uses the stdlib JSON handler.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewHandler builds a slog handler for the given level and format. A nil
// writer defaults to stderr. Unknown levels fall back to info, unknown
// formats to text.
func NewHandler(level, format string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}
	if strings.EqualFold(format, FormatJSON) {
		return slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: slogLevel(level),
		})
	}
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: charmLevel(level) == log.DebugLevel,
		Level:           charmLevel(level),
	})
}

// SetDefault installs a handler built from level and format as the process
// default logger.
func SetDefault(level, format string) {
	slog.SetDefault(slog.New(NewHandler(level, format, nil)))
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func charmLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
