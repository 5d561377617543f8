package bitvec

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Logger wraps slog.Logger with bitvec-specific fields.
// Only Dynamic logs, and only when its storage is reallocated.
type Logger struct {
	*slog.Logger
	sampler *rate.Sometimes // nil logs every reallocation
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithSampling returns a logger that records the first reallocations up to
// first, then one in every, and at least one per interval. Zero values
// disable the corresponding rule.
func (l *Logger) WithSampling(first, every int, interval time.Duration) *Logger {
	return &Logger{
		Logger:  l.Logger,
		sampler: &rate.Sometimes{First: first, Every: every, Interval: interval},
	}
}

// WithBlockWidth adds the block width to the logger.
func (l *Logger) WithBlockWidth(w int) *Logger {
	return &Logger{
		Logger:  l.Logger.With("block_width", w),
		sampler: l.sampler,
	}
}

// LogRealloc logs a storage reallocation caused by op.
func (l *Logger) LogRealloc(op string, oldBlocks, newBlocks, size int) {
	if l.sampler != nil {
		l.sampler.Do(func() { l.logRealloc(op, oldBlocks, newBlocks, size) })
		return
	}
	l.logRealloc(op, oldBlocks, newBlocks, size)
}

func (l *Logger) logRealloc(op string, oldBlocks, newBlocks, size int) {
	switch {
	case newBlocks == 0:
		l.Debug("storage released",
			"op", op,
			"old_blocks", oldBlocks,
		)
	case newBlocks > oldBlocks:
		l.Debug("storage grown",
			"op", op,
			"old_blocks", oldBlocks,
			"new_blocks", newBlocks,
			"size", size,
		)
	default:
		l.Debug("storage shrunk",
			"op", op,
			"old_blocks", oldBlocks,
			"new_blocks", newBlocks,
			"size", size,
		)
	}
}
