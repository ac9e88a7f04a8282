package logger

import (
	"io"
	"log/slog"
)

// NewNope creates a logger that discards all output.
// Clients use it until logging is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
