// Package logging sets up the JSON file logger of the tabbar tools. The
// terminal belongs to the UI, so nothing is ever written to stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Options struct {
	// Path of the log file. Parent directories are created. An empty path
	// discards all records.
	Path string
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string
}

// Logger is a slog.Logger with an adjustable level and the file it writes to.
type Logger struct {
	*slog.Logger

	level *slog.LevelVar
	file  *os.File
}

// New opens the log file and returns a logger writing JSON records to it.
func New(opts Options) (*Logger, error) {
	level := &slog.LevelVar{}
	level.Set(ParseLevel(opts.Level))

	var (
		w    io.Writer = io.Discard
		file *os.File
	)
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, file = f, f
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return &Logger{Logger: slog.New(handler), level: level, file: file}, nil
}

// SetLevel changes the level of an existing logger.
func (l *Logger) SetLevel(raw string) {
	l.level.Set(ParseLevel(raw))
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
