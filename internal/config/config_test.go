package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTP.Listen != ":8080" {
		t.Errorf("Expected :8080, got %s", cfg.HTTP.Listen)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Expected 24h, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Window.Width != 1600 || cfg.Window.Title != "Room Designer" {
		t.Errorf("Unexpected window config %+v", cfg.Window)
	}
}

func TestFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"data": {"path": "/tmp/x.db"}, "log": {"level": "debug", "format": "json"}, "http": {"listen": ":9000"}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROOMDESIGNER_HTTP_LISTEN", ":9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.Path != "/tmp/x.db" || cfg.Log.Format != "json" {
		t.Errorf("Expected file values, got %+v", cfg)
	}
	if cfg.HTTP.Listen != ":9100" {
		t.Errorf("Expected env override :9100, got %s", cfg.HTTP.Listen)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestInvalidFormat(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("ROOMDESIGNER_LOG_FORMAT", "xml")
	if _, err := Load(""); err == nil {
		t.Error("Expected error for unknown log format")
	}
}
