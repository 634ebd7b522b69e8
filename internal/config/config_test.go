package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// An empty config file leaves every default in place.
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load with defaults: %v", err)
	}
	if cfg.Backend.BaseURL != "https://slfagrouche-ai-suny-agent.hf.space" {
		t.Fatalf("unexpected default base URL %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 60*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.Backend.Timeout)
	}
	if cfg.UI.Theme != "auto" {
		t.Fatalf("unexpected default theme %q", cfg.UI.Theme)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected default log level %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `backend:
  base_url: http://localhost:8080
  timeout: 5s
ui:
  theme: dark
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend.BaseURL != "http://localhost:8080" {
		t.Fatalf("base URL not read from file: %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 5*time.Second {
		t.Fatalf("timeout not read from file: %v", cfg.Backend.Timeout)
	}
	if cfg.UI.Theme != "dark" {
		t.Fatalf("theme not read from file: %q", cfg.UI.Theme)
	}
}

func TestWriteDefaultCreatesAndPreserves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("write default: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("default config must load back: %v", err)
	}
	if cfg.Backend.BaseURL == "" {
		t.Fatal("written defaults are incomplete")
	}

	// A second call must not clobber an existing file.
	if err := os.WriteFile(path, []byte("ui:\n  theme: dark\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefault(path); err != nil {
		t.Fatalf("write default on existing: %v", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Theme != "dark" {
		t.Fatal("WriteDefault overwrote an existing config file")
	}
}
