package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khanglvm/sleepwise/internal/sleep"
)

// Save writes the model artifact as JSON. The format is internal; the only
// compatibility promise is that Load of the same sleepwise version reads it.
func (m *Model) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	// Write via temp file + rename so a crash never leaves a torn artifact.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write model artifact: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace model artifact: %w", err)
	}

	return nil
}

// Load reads a model artifact and verifies it matches the current feature
// encoding. A model trained under a different encoding version cannot be used
// and must be retrained.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ArtifactError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Re-train with: sleepwise train",
		}
	}

	if m.EncodingVersion != sleep.EncodingVersion {
		return nil, &ArtifactError{
			Path:    path,
			Message: fmt.Sprintf("model encoding %q does not match current encoding %q", m.EncodingVersion, sleep.EncodingVersion),
			Hint:    "Re-train with: sleepwise train",
		}
	}
	if len(m.Trees) == 0 {
		return nil, &ArtifactError{
			Path:    path,
			Message: "artifact contains no trees",
			Hint:    "Re-train with: sleepwise train",
		}
	}

	return &m, nil
}
