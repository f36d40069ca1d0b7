package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/footprint-tools/dispatch/internal/log"
	"github.com/footprint-tools/dispatch/internal/paths"
)

// Config holds the settings read from config.toml.
type Config struct {
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	EnableLog   bool   `toml:"enable_log"`
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
	Database    string `toml:"database"`
	Pager       string `toml:"pager"`
}

// Defaults returns the configuration used when no file or override sets a value.
func Defaults() Config {
	return Config{
		LogLevel:    "warn",
		LogFile:     paths.LogFilePath(),
		EnableLog:   true,
		Prompt:      "dsp> ",
		HistoryFile: paths.HistoryFilePath(),
		Color:       true,
		Database:    paths.DatabasePath(),
		Pager:       "less -FRSX",
	}
}

// Load reads path over the defaults. A missing file is not an error.
// Keys the file sets override defaults; unknown keys are logged and ignored.
func Load(path string) (Config, error) {
	cfg := Defaults()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Warn("config: ignoring unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Resolve loads path, reads envFile into the process environment and applies DSP_*
// overrides. An empty envFile skips the dotenv step.
func Resolve(path, envFile string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}

	if envFile != "" {
		if err := LoadEnvFile(envFile); err != nil {
			return cfg, err
		}
	}

	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}
