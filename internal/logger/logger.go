package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates the process logger.
// prod/dev: JSON handler at info level for log aggregation.
// anything else: text handler at debug level.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	var handler slog.Handler
	switch env {
	case "prod", "dev":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: true,
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler).With(
		slog.String("service", "trainboard"),
		slog.String("environment", env),
	)
}
