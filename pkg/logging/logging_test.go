package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesPlainTextAtLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := Setup(&buf, slog.LevelWarn)

	logger.Info("hidden")
	logger.Warn("pot journal unavailable", "path", "journal.db")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "pot journal unavailable")
	assert.Contains(t, out, "path=journal.db")
	assert.NotContains(t, out, "\x1b[", "buffer output must not be colored")
}

func TestSetupFile_EmptyPathDiscards(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logger, closeFn, err := SetupFile("", slog.LevelInfo)

	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closeFn())
}

func TestSetupFile_AppendsToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "potcatalog.log")
	logger, closeFn, err := SetupFile(path, slog.LevelInfo)
	require.NoError(t, err)

	logger.Info("tui started")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tui started")
}

func TestIsTerminal_NonTTYWriters(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	assert.False(t, isTerminal(f), "regular file")
	assert.False(t, isTerminal(w), "pipe")
	assert.False(t, isTerminal(&bytes.Buffer{}), "non-file writer")
}

func TestSetupFile_NoColorInFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "potcatalog.log")
	logger, closeFn, err := SetupFile(path, slog.LevelInfo)
	require.NoError(t, err)

	logger.Error("journal write failed", "action", "added")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "\x1b[")
}
