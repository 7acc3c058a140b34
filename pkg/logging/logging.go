// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logger := logging.Setup(os.Stderr, slog.LevelInfo)
//	logger, closeFn, err := logging.SetupFile("/tmp/potcatalog.log", slog.LevelDebug)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup installs a tint handler writing to w as the slog default and returns
// the logger. Color is disabled unless w is a terminal-backed *os.File.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(NewHandler(w, level))
	slog.SetDefault(logger)
	return logger
}

// NewHandler returns the tint handler used by Setup.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	})
}

// SetupFile is Setup for an append-only log file. An empty path discards all
// output. The returned func closes the file.
func SetupFile(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return Setup(io.Discard, level), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	return Setup(f, level), f.Close, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
