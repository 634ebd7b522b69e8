// Package config loads application configuration and persists user
// settings. App config is read-only for the lifetime of the process; the
// consent decision lives in a separate mutable settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the read-only application configuration.
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BackendConfig points at the assistant backend.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds display preferences.
type UIConfig struct {
	Theme string `mapstructure:"theme"` // auto, light, dark
}

// LoggingConfig controls the file logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultDir returns the per-user configuration directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".campusmind"
	}
	return filepath.Join(home, ".campusmind")
}

// Load reads configuration from the given file (or the default locations
// when path is empty), applying defaults and CAMPUSMIND_* environment
// overrides. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CAMPUSMIND")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend.base_url", "https://slfagrouche-ai-suny-agent.hf.space")
	v.SetDefault("backend.timeout", "60s")
	v.SetDefault("ui.theme", "auto")
	v.SetDefault("logging.level", "info")
}

// WriteDefault writes a starter config file at path unless one already
// exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	defaults := map[string]any{
		"backend": map[string]any{
			"base_url": "https://slfagrouche-ai-suny-agent.hf.space",
			"timeout":  "60s",
		},
		"ui":      map[string]any{"theme": "auto"},
		"logging": map[string]any{"level": "info"},
	}
	data, err := yaml.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
