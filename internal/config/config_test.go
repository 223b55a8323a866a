package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("EVQ_STATE_PATH", filepath.Join(t.TempDir(), "state.json"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "file" || cfg.Output != "table" || cfg.LogLevel != "info" {
		t.Errorf("defaults wrong: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "custom.json")
	t.Setenv("EVQ_STATE_PATH", statePath)
	t.Setenv("EVQ_BACKEND", "sqlite")
	t.Setenv("EVQ_OUTPUT", "json")
	t.Setenv("EVQ_LOG_LEVEL", "debug")
	t.Setenv("EVQ_USER", "US-00001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StatePath != statePath || cfg.Backend != "sqlite" || cfg.Output != "json" ||
		cfg.LogLevel != "debug" || cfg.UserID != "US-00001" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadStatePathFromFileIndirection(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.json")
	secretFile := filepath.Join(t.TempDir(), "path.txt")
	if err := os.WriteFile(secretFile, []byte(statePath), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EVQ_STATE_PATH", "")
	t.Setenv("EVQ_STATE_PATH_FILE", secretFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StatePath != statePath {
		t.Errorf("StatePath = %q, want %q", cfg.StatePath, statePath)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("EVQ_BACKEND", "redis")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestDefaultStateFile(t *testing.T) {
	if got := defaultStateFile("sqlite"); got != "evq.db" {
		t.Errorf("sqlite default = %q", got)
	}
	if got := defaultStateFile("file"); got != "state.json" {
		t.Errorf("file default = %q", got)
	}
}
