package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info %s", "message")
	logger.Warn("warning message")
	logger.Error("error message")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logContent := string(content)
	require.Contains(t, logContent, "DEBUG: debug message")
	require.Contains(t, logContent, "INFO: info message")
	require.Contains(t, logContent, "WARN: warning message")
	require.Contains(t, logContent, "ERROR: error message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	out := buf.String()
	require.NotContains(t, out, "debug message")
	require.NotContains(t, out, "info message")
	require.Contains(t, out, "warning message")
	require.Contains(t, out, "error message")

	buf.Reset()
	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	require.Contains(t, buf.String(), "DEBUG: now visible")
}

func TestLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	logger.WithTags("invocation:42").WithTags("command:user.create").
		WithError(errors.New("boom")).Warn("handler failed")

	line := strings.TrimSuffix(buf.String(), "\n")
	require.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] WARN: handler failed`, line)
	require.True(t, strings.HasSuffix(line, " error=boom tags=invocation:42,command:user.create"), line)
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestLogger_DerivedLoggersDoNotLeak(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	_ = logger.WithTags("a")
	_ = logger.WithError(errors.New("x"))
	logger.Info("plain")

	require.NotContains(t, buf.String(), "tags=")
	require.NotContains(t, buf.String(), "error=")
}

func TestLogger_SetEnabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelDebug)

	logger.SetEnabled(false)
	logger.Error("hidden")
	require.Empty(t, buf.String())

	logger.SetEnabled(true)
	logger.Error("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestLogger_FilePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dsp.log")
	require.NoError(t, os.MkdirAll(filepath.Dir(logPath), 0700))
	require.NoError(t, os.WriteFile(logPath, []byte("old\n"), 0644))

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	logger.Info("appended")
	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "old\n"))
}

func TestLogger_CloseIsIdempotent(t *testing.T) {
	logger, err := New(filepath.Join(t.TempDir(), "test.log"), LevelInfo)
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	require.NoError(t, logger.WithTags("x").Close())
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	logger.SetLevel(LevelDebug)
	require.NoError(t, logger.Close())
	require.IsType(t, NopLogger{}, logger.WithTags("x"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"verbose", LevelWarn},
		{"", LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestDefault_BeforeInit(t *testing.T) {
	if GetLogger() != nil {
		t.Skip("global logger already initialized")
	}
	require.IsType(t, NopLogger{}, Default())
	Info("dropped")
	require.NoError(t, Close())
}

func TestInit_InstallsDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	path := filepath.Join(t.TempDir(), "dsp.log")
	l, err := Init(path, LevelInfo)
	require.NoError(t, err)
	require.Same(t, l, GetLogger())

	Info("global %d", 1)
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "INFO: global 1")

	SetDefault(nil)
	require.IsType(t, NopLogger{}, Default())
}

func TestNopLogger(t *testing.T) {
	var l NopLogger
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	require.Equal(t, NopLogger{}, l.WithError(errors.New("x")).WithTags("y"))
	require.NoError(t, l.Close())
}
