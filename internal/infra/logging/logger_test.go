package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level slog.Level) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "tasktrack.log")
	logger := New(path, level)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.Local) }
	t.Cleanup(func() { _ = logger.Close() })
	return logger, path
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLogger_TaskEntry(t *testing.T) {
	logger, path := newTestLogger(t, slog.LevelInfo)

	logger.Info(1, "task", "created: \"Buy milk\"")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2025-12-30 09:32:51] [INFO] [task-1] [task] created: \"Buy milk\"\n", string(content))
}

func TestLogger_GlobalEntry(t *testing.T) {
	logger, path := newTestLogger(t, slog.LevelInfo)

	logger.Warn(0, "store", "load failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[WARN] [global] [store] load failed")
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, path := newTestLogger(t, slog.LevelWarn)

	logger.Debug(0, "test", "debug message")
	logger.Info(0, "test", "info message")
	logger.Warn(0, "test", "warn message")
	logger.Error(0, "test", "error message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(content)
	assert.NotContains(t, s, "debug message")
	assert.NotContains(t, s, "info message")
	assert.Contains(t, s, "[WARN]")
	assert.Contains(t, s, "[ERROR]")
	assert.Equal(t, 2, strings.Count(s, "\n"))
}

func TestLogger_Disabled(t *testing.T) {
	logger := New("", slog.LevelDebug)

	logger.Error(1, "task", "nowhere")

	assert.NoError(t, logger.Close())
	assert.Empty(t, logger.Path())
}

func TestLogger_AppendsAcrossInstances(t *testing.T) {
	logger, path := newTestLogger(t, slog.LevelInfo)
	logger.Info(0, "a", "first")
	require.NoError(t, logger.Close())

	second := New(path, slog.LevelInfo)
	defer func() { _ = second.Close() }()
	second.Info(0, "b", "second")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "first")
	assert.Contains(t, string(content), "second")
}
