package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "token"))
	if err != nil {
		t.Fatalf("LoadFrom with missing file: %v", err)
	}
	if s.SignedIn() {
		t.Error("expected not signed in with missing token file")
	}
	if s.Token() != "" {
		t.Errorf("Token() = %q, want empty", s.Token())
	}
}

func TestSetTokenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if err := s.SetToken("jwt-abc123"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}
	if !s.SignedIn() {
		t.Error("expected signed in after SetToken")
	}

	// A fresh load should see the same token
	s2, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("second LoadFrom: %v", err)
	}
	if s2.Token() != "jwt-abc123" {
		t.Errorf("reloaded token = %q, want %q", s2.Token(), "jwt-abc123")
	}
}

func TestSetTokenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if err := s.SetToken("tok"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("token file not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("token file mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s, _ := LoadFrom(path)
	if err := s.SetToken("tok"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.SignedIn() {
		t.Error("expected not signed in after Clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("token file should be removed after Clear")
	}

	// Clearing again is not an error
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  jwt-xyz\n"), 0600); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if s.Token() != "jwt-xyz" {
		t.Errorf("Token() = %q, want %q", s.Token(), "jwt-xyz")
	}
}
