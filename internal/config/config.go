/*
Package config handles loading and saving sleepwise configuration.

Configuration is stored in ~/.sleepwise.json:

	{
	  "historyPath": "/home/user/.sleepwise/history.csv",
	  "modelPath": "/home/user/.sleepwise/model.json"
	}

A history path ending in ".db" selects the SQLite backend. The environment
variables SLEEPWISE_HISTORY_PATH and SLEEPWISE_MODEL_PATH override the file
values; a .env file in the working directory is honored via godotenv.
*/
package config

import (
	"os"
	"path/filepath"
)

// Environment override names. These are the only environment variables
// sleepwise reads.
const (
	EnvHistoryPath = "SLEEPWISE_HISTORY_PATH"
	EnvModelPath   = "SLEEPWISE_MODEL_PATH"
)

// Config is the root configuration structure.
type Config struct {
	// HistoryPath locates the persisted sleep history. Extension ".db"
	// selects the SQLite backend; anything else is delimited text.
	HistoryPath string `json:"historyPath"`

	// ModelPath locates the trained model artifact.
	ModelPath string `json:"modelPath"`
}

// NewConfig returns a configuration pointing at the default locations under
// ~/.sleepwise.
func NewConfig() *Config {
	dir := dataDir()
	return &Config{
		HistoryPath: filepath.Join(dir, "history.csv"),
		ModelPath:   filepath.Join(dir, "model.json"),
	}
}

// DefaultConfigPath returns ~/.sleepwise.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sleepwise.json"), nil
}

// DataDir returns the directory holding the default history, model, and
// chart artifacts.
func DataDir() string {
	return dataDir()
}

// dataDir returns ~/.sleepwise, falling back to the working directory when
// the home directory cannot be resolved.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sleepwise"
	}
	return filepath.Join(home, ".sleepwise")
}
