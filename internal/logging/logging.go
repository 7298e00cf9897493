// Package logging configures the process-wide structured logger.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/abhisek/tutorlink/internal/config"
)

type ctxKey string

const ctxKeySessionID ctxKey = "session_id"

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

// Setup replaces the process logger with one configured from cfg, writing
// to w, and installs it as the slog default.
func Setup(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// Logger returns the process logger.
func Logger() *slog.Logger {
	return logger
}

// WithSession stores a session id in the context.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKeySessionID, sessionID)
}

// SessionFrom returns the session id stored in ctx, if any.
func SessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeySessionID).(string)
	return id
}

// FromContext returns the process logger with session_id attached when the
// context carries one.
func FromContext(ctx context.Context) *slog.Logger {
	id := SessionFrom(ctx)
	if id == "" {
		return logger
	}
	return logger.With("session_id", id)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
