package kclosest

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kclosest-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(s Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", s.String()),
	}
}

// WithCount adds a count (collection size) field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogCreate logs the construction of a Seeker.
func (l *Logger) LogCreate(ctx context.Context, items int, metric string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "seeker creation failed",
			"items", items,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "seeker created",
		"items", items,
		"metric", metric,
	)
}

// LogQuery logs a k-nearest query over a collection of n elements.
func (l *Logger) LogQuery(ctx context.Context, s Strategy, n, k, results int) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.WithStrategy(s).WithK(k).WithCount(n).DebugContext(ctx, "query completed",
		"results", results,
	)
}
