// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger using log/slog.
// Console output is pretty-printed or JSON; an optional daily file receives
// every record as JSON regardless of the console level.
type Logger struct {
	logger   *slog.Logger
	file     *slog.Logger
	sink     *os.File
	level    *slog.LevelVar
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance.
func New() ports.Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	return &Logger{
		logger: slog.New(NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		level:  level,
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode setting.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.consoleHandler())
}

// SetJSON switches between JSON and pretty logging.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.consoleHandler())
}

// SetLevel changes the minimum level of console output.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// AttachFile starts appending JSON records to the log file of the given day inside dir.
// A previously attached file is closed.
func (l *Logger) AttachFile(dir string, day time.Time) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(domain.WrapCause(err, domain.ErrLogFileOpenFailed), "path", dir)
	}

	path := filepath.Join(dir, domain.LogFileName(day))
	//nolint:gosec // path is built from the configured log directory
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.PrivateFilePerm)
	if err != nil {
		return zerr.With(domain.WrapCause(err, domain.ErrLogFileOpenFailed), "path", path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sink != nil {
		_ = l.sink.Close()
	}
	l.sink = f
	l.file = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

// Close detaches and closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sink == nil {
		return nil
	}
	err := l.sink.Close()
	l.sink = nil
	l.file = nil
	return err
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.log(slog.LevelDebug, msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log(slog.LevelInfo, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.log(slog.LevelWarn, msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.file != nil {
		l.file.Error("operation failed", "error", err)
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// Observe records a core event. Events are debug records on the console and
// structured entries in the log file.
func (l *Logger) Observe(event domain.Event) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	attrs := eventAttrs(event)
	l.logger.Debug(event.Message, attrs...)
	if l.file != nil {
		l.file.Debug(event.Message, append([]any{slog.Time("event_time", event.Time)}, attrs...)...)
	}
}

func (l *Logger) log(level slog.Level, msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ctx := context.Background()
	l.logger.Log(ctx, level, msg)
	if l.file != nil {
		l.file.Log(ctx, level, msg)
	}
}

// consoleHandler builds the handler for the current mode. Callers hold mu.
func (l *Logger) consoleHandler() slog.Handler {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: l.level}
	if l.jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}
