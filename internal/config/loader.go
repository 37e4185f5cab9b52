package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the configuration from the default path and applies environment
// overrides. A missing config file is not an error: defaults are returned so
// first runs work without any setup.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return applyEnv(NewConfig()), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path and applies
// environment overrides.
func LoadFrom(path string) (*Config, error) {
	// A .env next to the invocation may carry the path overrides.
	_ = godotenv.Load()

	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		if os.IsPermission(err) {
			return nil, &PermissionError{
				Path: path,
				Op:   "read",
				Fix:  fmt.Sprintf("Run: chmod 644 %s", path),
			}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "Fix the file or delete it to fall back to defaults",
		}
	}

	// Any field left empty falls back to the default location.
	defaults := NewConfig()
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = defaults.HistoryPath
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = defaults.ModelPath
	}

	return applyEnv(cfg), nil
}

// applyEnv overlays the environment overrides onto cfg.
func applyEnv(cfg *Config) *Config {
	if v := os.Getenv(EnvHistoryPath); v != "" {
		cfg.HistoryPath = v
	}
	if v := os.Getenv(EnvModelPath); v != "" {
		cfg.ModelPath = v
	}
	return cfg
}
