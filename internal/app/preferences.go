package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Preferences are the persisted user settings.
type Preferences struct {
	PermanentAdmin     bool   `yaml:"permanent_admin"`
	MasterPasswordHash string `yaml:"master_password_hash,omitempty"`
}

// HasMasterPassword reports whether raise can succeed at all.
func (p *Preferences) HasMasterPassword() bool {
	return p != nil && p.MasterPasswordHash != ""
}

// LoadPreferences reads path, creating it with defaults when missing.
func LoadPreferences(path string) (*Preferences, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		prefs := &Preferences{}
		if err := SavePreferences(path, prefs); err != nil {
			return nil, err
		}
		return prefs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("app: read preferences: %w", err)
	}
	var prefs Preferences
	if err := yaml.Unmarshal(raw, &prefs); err != nil {
		return nil, fmt.Errorf("app: decode preferences %s: %w", path, err)
	}
	return &prefs, nil
}

// SavePreferences writes prefs to path through a temporary file.
func SavePreferences(path string, prefs *Preferences) error {
	raw, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("app: encode preferences: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("app: create preferences dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".preferences-*")
	if err != nil {
		return fmt.Errorf("app: write preferences: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("app: write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("app: write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("app: write preferences: %w", err)
	}
	return nil
}
