package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogLevel != "none" {
		t.Errorf("expected default log level 'none', got %q", cfg.LogLevel)
	}
	if cfg.Precision != DefaultPrecision {
		t.Errorf("expected default precision %d, got %d", DefaultPrecision, cfg.Precision)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.DisableMouse = true
	cfg.Precision = 4

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %q", loaded.LogLevel)
	}
	if !loaded.DisableMouse {
		t.Error("expected DisableMouse to round-trip as true")
	}
	if loaded.Precision != 4 {
		t.Errorf("expected precision 4, got %d", loaded.Precision)
	}
}

func TestNormalizeClampsPrecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"precision": -3}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Precision != DefaultPrecision {
		t.Errorf("expected precision to fall back to %d, got %d", DefaultPrecision, cfg.Precision)
	}
}
