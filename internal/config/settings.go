package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings is the mutable per-user state. Unlike Config it is written back
// at runtime: the consent decision is read once at startup and persisted the
// first time the user decides.
type Settings struct {
	// Consent records whether the user agreed to have questions stored for
	// service improvement. Nil means undecided and triggers the consent
	// prompt.
	Consent *bool `json:"consent,omitempty"`
}

// DefaultSettingsPath returns the settings file location.
func DefaultSettingsPath() string {
	return filepath.Join(DefaultDir(), "settings.json")
}

// LoadSettings reads the settings file. A missing file yields zero-value
// settings, not an error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

// Save writes the settings file, creating the directory if needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// SetConsent records the decision.
func (s *Settings) SetConsent(granted bool) {
	s.Consent = &granted
}

// UserID maps the consent state to the identifier sent with every request.
func (s *Settings) UserID() string {
	if s.Consent != nil && *s.Consent {
		return "consented-user"
	}
	return "anonymous"
}

// ConsentDecided reports whether the user has already answered the consent
// prompt.
func (s *Settings) ConsentDecided() bool {
	return s.Consent != nil
}
