package skewheap

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with skewheap-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithName tags every record with the heap's name.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("heap", name),
	}
}

// LogCompaction logs a compaction pass.
func (l *Logger) LogCompaction(ctx context.Context, slotsBefore, slotsAfter, relocated int, elapsed time.Duration) {
	l.DebugContext(ctx, "compaction completed",
		"slots_before", slotsBefore,
		"slots_after", slotsAfter,
		"relocated", relocated,
		"elapsed", elapsed,
	)
}

// LogAdopt logs an adopt operation.
func (l *Logger) LogAdopt(ctx context.Context, adopted, transplanted, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "adopt failed",
			"adopted", adopted,
			"size", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "adopt completed",
			"adopted", adopted,
			"transplanted", transplanted,
			"size", size,
		)
	}
}

// LogExhausted logs an insert that could not get a node slot.
func (l *Logger) LogExhausted(ctx context.Context, size int, err error) {
	l.ErrorContext(ctx, "put failed",
		"size", size,
		"error", err,
	)
}
