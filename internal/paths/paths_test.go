package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ReturnsNonEmpty(t *testing.T) {
	t.Setenv(HomeEnv, "")

	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.NotEqual(t, ".", dir)
	require.Equal(t, "dsp", strings.ToLower(filepath.Base(dir)))
}

func TestAppLocalDataDir_Platform(t *testing.T) {
	t.Setenv(HomeEnv, "")

	dir := AppLocalDataDir()
	require.True(t, strings.HasSuffix(dir, "dsp"), "AppLocalDataDir should end with 'dsp': %s", dir)

	switch runtime.GOOS {
	case "darwin":
		require.Contains(t, dir, filepath.Join("Library", "Application Support"))
	case "windows":
		require.Contains(t, strings.ToLower(dir), "local")
	}
}

func TestAppLocalDataDir_XDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG only applies on linux")
	}
	tmp := t.TempDir()
	t.Setenv(HomeEnv, "")
	t.Setenv("XDG_DATA_HOME", tmp)

	require.Equal(t, filepath.Join(tmp, "dsp"), AppLocalDataDir())
}

func TestHomeOverride(t *testing.T) {
	home := filepath.Join(t.TempDir(), "custom")
	t.Setenv(HomeEnv, home)

	require.Equal(t, home, AppDataDir())
	require.Equal(t, home, AppLocalDataDir())
	require.Equal(t, filepath.Join(home, "config.toml"), ConfigFilePath())
	require.Equal(t, filepath.Join(home, ".env"), EnvFilePath())
	require.Equal(t, filepath.Join(home, "dsp.log"), LogFilePath())
	require.Equal(t, filepath.Join(home, "dsp.db"), DatabasePath())
	require.Equal(t, filepath.Join(home, "history"), HistoryFilePath())

	info, err := os.Stat(home)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0700), info.Mode().Perm())
	}
}
