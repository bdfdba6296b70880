// Package logger adapts log/slog to ports.Logger with a colored terminal
// handler and an optional JSON mode.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/pathforge/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	out    io.Writer
	json   bool
	level  slog.Level
}

// New creates a Logger writing pretty output to stderr at info level.
func New() ports.Logger {
	l := &Logger{out: os.Stderr, level: slog.LevelInfo}
	l.rebuild()
	return l
}

// SetOutput redirects the logger. A nil w means stderr. The current mode and
// level are kept.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.out = w
	l.rebuild()
}

// SetJSON switches between JSON records and pretty lines.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.json = enable
	l.rebuild()
}

// SetQuiet drops info records when enabled.
func (l *Logger) SetQuiet(quiet bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = slog.LevelInfo
	if quiet {
		l.level = slog.LevelWarn
	}
	l.rebuild()
}

// rebuild must be called with mu held.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}
	var h slog.Handler
	if l.json {
		h = slog.NewJSONHandler(l.out, opts)
	} else {
		h = NewPrettyHandler(l.out, opts)
	}
	l.logger = slog.New(h)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain. Nil errors are ignored.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	chain := causes(err)
	if l.json {
		l.logger.Error(chain[0], "error", err.Error())
		return
	}
	l.logger.Error(formatChain(chain))
}
