package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName = "dsp"

	// HomeEnv overrides every directory below when set.
	HomeEnv = "DSP_HOME"
)

// AppDataDir returns the application directory for config and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return ensureDir(home)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return ensureDir(filepath.Join(dir, appDirName))
}

// AppLocalDataDir returns the OS-appropriate local data directory for the user
// database and input history.
//   - macOS: ~/Library/Application Support/dsp
//   - Linux: $XDG_DATA_HOME/dsp or ~/.local/share/dsp
//   - Windows: %LOCALAPPDATA%\dsp
func AppLocalDataDir() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return ensureDir(home)
	}

	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return ensureDir(filepath.Join(base, appDirName))
}

// ensureDir creates dir with restrictive permissions and returns it unchanged.
func ensureDir(dir string) string {
	_ = os.MkdirAll(dir, 0700)
	return dir
}

// ConfigFilePath returns the TOML config file path.
func ConfigFilePath() string {
	return filepath.Join(AppDataDir(), "config.toml")
}

// EnvFilePath returns the optional dotenv file read before DSP_* overrides.
func EnvFilePath() string {
	return filepath.Join(AppDataDir(), ".env")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "dsp.log")
}

// DatabasePath returns the path to the user database.
func DatabasePath() string {
	return filepath.Join(AppLocalDataDir(), "dsp.db")
}

// HistoryFilePath returns the interactive input history file.
func HistoryFilePath() string {
	return filepath.Join(AppLocalDataDir(), "history")
}
