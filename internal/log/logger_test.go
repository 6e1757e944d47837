package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning %s", "message")
	logger.Error("error message")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logContent := string(content)
	require.Contains(t, logContent, "DEBUG")
	require.Contains(t, logContent, "debug message")
	require.Contains(t, logContent, "INFO")
	require.Contains(t, logContent, "info message")
	require.Contains(t, logContent, "WARN")
	require.Contains(t, logContent, "warning message")
	require.Contains(t, logContent, "ERROR")
	require.Contains(t, logContent, "error message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTo(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	out := buf.String()
	require.NotContains(t, out, "debug message")
	require.NotContains(t, out, "info message")
	require.Contains(t, out, "warning message")
	require.Contains(t, out, "error message")
}

func TestLogger_FilePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	require.NoError(t, os.WriteFile(logPath, nil, 0644))

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_DirectoryPermissions(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "nested", "logs")
	logger, err := New(filepath.Join(logDir, "test.log"), LevelInfo)
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	first, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	first.Info("first line")
	require.NoError(t, first.Close())

	second, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	second.Info("second line")
	require.NoError(t, second.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "first line")
	require.Contains(t, string(content), "second line")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{" Warn ", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}
