package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.GetServerURL() != DefaultServerURL {
		t.Errorf("ServerURL = %q, want %q", cfg.GetServerURL(), DefaultServerURL)
	}
	if !cfg.GetSidebarOpen() {
		t.Error("sidebar should default to open")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	cfg.SetUserID("user-42")
	cfg.SetNotificationsEnabled(true)
	cfg.SetSidebarOpen(false)
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg2, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg2.GetUserID() != "user-42" {
		t.Errorf("UserID = %q, want %q", cfg2.GetUserID(), "user-42")
	}
	if !cfg2.GetNotificationsEnabled() {
		t.Error("notifications setting lost across reload")
	}
	if cfg2.GetSidebarOpen() {
		t.Error("sidebar setting lost across reload")
	}
}

func TestEnvOverridesServerURL(t *testing.T) {
	t.Setenv("MBOT_SERVER_URL", "https://m.example.com")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.GetServerURL() != "https://m.example.com" {
		t.Errorf("ServerURL = %q, want env override", cfg.GetServerURL())
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}
