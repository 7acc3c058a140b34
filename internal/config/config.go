// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr      string
	JournalPath     string
	LogLevel        slog.Level
	LogFile         string
	ShutdownTimeout time.Duration
}

// JournalEnabled reports whether catalog mutations should be recorded to a
// SQLite journal.
func (c *Config) JournalEnabled() bool {
	return c.JournalPath != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: POTCATALOG_LISTEN_ADDR (127.0.0.1:8080),
// POTCATALOG_JOURNAL_PATH (empty, journal disabled), POTCATALOG_LOG_LEVEL (info),
// POTCATALOG_LOG_FILE (empty) and POTCATALOG_SHUTDOWN_TIMEOUT (10s).
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("POTCATALOG_LISTEN_ADDR"); ok && v != "" {
		listenAddr = v
	}

	level := slog.LevelInfo
	if v, ok := os.LookupEnv("POTCATALOG_LOG_LEVEL"); ok && v != "" {
		parsed, err := ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("POTCATALOG_LOG_LEVEL: %w", err)
		}
		level = parsed
	}

	shutdownTimeout := 10 * time.Second
	if v, ok := os.LookupEnv("POTCATALOG_SHUTDOWN_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("POTCATALOG_SHUTDOWN_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("POTCATALOG_SHUTDOWN_TIMEOUT must be positive, got %s", parsed)
		}
		shutdownTimeout = parsed
	}

	return &Config{
		ListenAddr:      listenAddr,
		JournalPath:     strings.TrimSpace(os.Getenv("POTCATALOG_JOURNAL_PATH")),
		LogLevel:        level,
		LogFile:         strings.TrimSpace(os.Getenv("POTCATALOG_LOG_FILE")),
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
