package recid

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with recid-specific context so that every
// component logs with consistent field names.
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
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithComponent adds a component field to the logger.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{Logger: l.Logger.With("component", name)}
}

// WithSource adds a rule source field (blob name or location) to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{Logger: l.Logger.With("source", source)}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{Logger: l.Logger.With("count", count)}
}

// LogAdd logs the registration of an identifier.
func (l *Logger) LogAdd(ctx context.Context, id ID, err error) {
	if err != nil {
		l.WarnContext(ctx, "add rejected",
			"kind", id.Kind().String(),
			"id", id.String(),
			"error", err,
		)
		return
	}
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "add completed",
		"kind", id.Kind().String(),
		"id", id.String(),
	)
}

// LogSort logs a sort of the wildcard buckets.
func (l *Logger) LogSort(ctx context.Context, wildcards int, d time.Duration) {
	l.DebugContext(ctx, "wildcard buckets sorted",
		"wildcards", wildcards,
		"duration", d,
	)
}

// LogFreeze logs the summary of a frozen index.
func (l *Logger) LogFreeze(ctx context.Context, entries, exact, keys, wildcards int) {
	l.InfoContext(ctx, "index frozen",
		"entries", entries,
		"exact", exact,
		"keys", keys,
		"wildcards", wildcards,
	)
}

// LogQuery logs a record query.
func (l *Logger) LogQuery(ctx context.Context, record Record, groups int, d time.Duration) {
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "query completed",
		"record", record.FormKey().String(),
		"groups", groups,
		"duration", d,
	)
}

// LogLoad logs a completed bulk rule load.
func (l *Logger) LogLoad(ctx context.Context, rules, skipped int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "rule load failed",
			"rules", rules,
			"error", err,
		)
	case skipped > 0:
		l.WarnContext(ctx, "rule load completed with skipped entries",
			"total", rules+skipped,
			"skipped", skipped,
			"loaded", rules,
		)
	default:
		l.InfoContext(ctx, "rule load completed",
			"rules", rules,
		)
	}
}
