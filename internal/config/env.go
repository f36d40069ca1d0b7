package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override config.toml.
const (
	EnvLogLevel    = "DSP_LOG_LEVEL"
	EnvLogFile     = "DSP_LOG_FILE"
	EnvEnableLog   = "DSP_ENABLE_LOG"
	EnvPrompt      = "DSP_PROMPT"
	EnvHistoryFile = "DSP_HISTORY_FILE"
	EnvColor       = "DSP_COLOR"
	EnvDatabase    = "DSP_DATABASE"
	EnvPager       = "DSP_PAGER"

	// EnvNoColor follows the no-color.org convention and wins over DSP_COLOR.
	EnvNoColor = "NO_COLOR"
)

// LoadEnvFile reads KEY=value pairs from path into the process environment.
// Variables already set in the environment are kept.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any DSP_* variable getenv returns non-empty.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	strs := map[string]*string{
		EnvLogLevel:    &cfg.LogLevel,
		EnvLogFile:     &cfg.LogFile,
		EnvPrompt:      &cfg.Prompt,
		EnvHistoryFile: &cfg.HistoryFile,
		EnvDatabase:    &cfg.Database,
		EnvPager:       &cfg.Pager,
	}
	for key, dst := range strs {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	bools := map[string]*bool{
		EnvEnableLog: &cfg.EnableLog,
		EnvColor:     &cfg.Color,
	}
	for key, dst := range bools {
		v := getenv(key)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: invalid boolean %q", key, v)
		}
		*dst = b
	}

	if getenv(EnvNoColor) != "" {
		cfg.Color = false
	}
	return nil
}
