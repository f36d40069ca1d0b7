package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/dispatch/internal/paths"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(paths.HomeEnv, home)
	t.Setenv("DSP_DATABASE", "")
	t.Setenv("DSP_LOG_FILE", "")
	return home
}

func TestExecute_OneShot(t *testing.T) {
	setupHome(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			name:     "version",
			args:     []string{"--no-pager", "version"},
			wantCode: 0,
			wantOut:  "dsp version",
		},
		{
			name:     "flags after the command belong to it",
			args:     []string{"user", "create", "--name=alice", "--admin"},
			wantCode: 0,
			wantOut:  "created alice (admin)",
		},
		{
			name:     "unknown command",
			args:     []string{"lst"},
			wantCode: 1,
			wantOut:  "Unknown command.",
		},
		{
			name:     "invalid arguments",
			args:     []string{"user", "create", "--age=old"},
			wantCode: 2,
			wantOut:  "Command help:",
		},
		{
			name:     "incomplete command",
			args:     []string{"user"},
			wantCode: 2,
			wantOut:  "Command requires a subcommand.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			code, err := execute(context.Background(), tt.args, strings.NewReader(""), out)
			require.NoError(t, err)
			require.Equal(t, tt.wantCode, code)
			require.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestExecute_StatePersistsAcrossRuns(t *testing.T) {
	setupHome(t)
	ctx := context.Background()

	code, err := execute(ctx, []string{"user", "create", "-n=bob", "--age=41"}, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 0, code)

	out := &bytes.Buffer{}
	code, err = execute(ctx, []string{"list"}, strings.NewReader(""), out)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "bob")
	require.Contains(t, out.String(), "41")
}

func TestExecute_Interactive(t *testing.T) {
	setupHome(t)

	in := strings.NewReader("user create --name=carol\n\nlist\nEXIT\nversion\n")
	out := &bytes.Buffer{}

	code, err := execute(context.Background(), nil, in, out)
	require.NoError(t, err)
	require.Equal(t, 0, code)

	got := out.String()
	require.Contains(t, got, "Type a command...")
	require.Contains(t, got, "created carol (user)")
	require.Contains(t, got, "carol")
	require.NotContains(t, got, "dsp version")
}

func TestExecute_InteractiveLongLine(t *testing.T) {
	setupHome(t)

	long := "list --limit=" + strings.Repeat("9", 70000)
	in := strings.NewReader(long + "\nversion\nexit\n")
	out := &bytes.Buffer{}

	code, err := execute(context.Background(), nil, in, out)
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "dsp version")
}

func TestExecute_ConfigFile(t *testing.T) {
	home := setupHome(t)

	cfgPath := filepath.Join(home, "custom.toml")
	dbPath := filepath.Join(home, "other.db")
	content := "database = \"" + filepath.ToSlash(dbPath) + "\"\nenable_log = false\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))

	code, err := execute(context.Background(), []string{"--config", cfgPath, "list"}, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 0, code)

	_, err = os.Stat(dbPath)
	require.NoError(t, err)
}

func TestExecute_InvalidConfig(t *testing.T) {
	home := setupHome(t)

	cfgPath := filepath.Join(home, "broken.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level = ["), 0600))

	code, err := execute(context.Background(), []string{"--config", cfgPath, "version"}, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	require.Equal(t, 1, code)
}
