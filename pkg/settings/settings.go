// Package settings persists the daybook configuration record.
//
// The record is opaque to the core: named fields are read and written
// whole, nothing here is cached between operations. Storage is a single
// YAML file, replaced atomically on save.
package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/daybook/pkg/taxonomy"
)

// ClassifierConfig holds the external classifier credential and endpoint.
type ClassifierConfig struct {
	APIKey  string `yaml:"apiKey,omitempty"`
	Model   string `yaml:"model,omitempty"`
	BaseURL string `yaml:"baseUrl,omitempty"`
}

// Record is the full persisted configuration.
type Record struct {
	NotesPath      string                    `yaml:"notesFilePath,omitempty"`
	CustomStates   []taxonomy.State          `yaml:"customStates,omitempty"`
	StateOverrides map[string]taxonomy.Patch `yaml:"stateOverrides,omitempty"`
	Classifier     ClassifierConfig          `yaml:"classifier,omitempty"`
}

// Store reads and writes a Record at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath resolves the per-user settings location
// (<user config dir>/daybook/settings.yaml).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "daybook", "settings.yaml"), nil
}

// Load reads the record from disk. A missing file yields a zero record,
// not an error; first-run callers get defaults.
func (s *Store) Load(ctx context.Context) (Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, nil
		}
		return Record{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return rec, nil
}

// Save writes the record, creating the parent directory when needed.
// The write goes through a temp file and rename so a crash never leaves a
// half-written settings file behind.
func (s *Store) Save(ctx context.Context, rec Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "daybook-settings-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("failed to chmod settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}
