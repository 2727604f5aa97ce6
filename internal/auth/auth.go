// Package auth manages the bearer token for the M backend.
//
// The browser client kept the token in localStorage under a fixed key; here it
// lives in a single file under the user's config directory. The Store is an
// explicit credential object threaded into every API call rather than an
// ambient lookup. Writes happen only at login and logout.
package auth

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Salman1205/M-bot/internal/logger"
)

// TokenFileName is the fixed name of the token file inside the config directory.
const TokenFileName = "token"

// Store holds the bearer token for the signed-in user.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
}

// defaultDir returns the path to the client's config directory.
func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mbot"), nil
}

// Load reads the token file from the default location. A missing file is not
// an error; it means no user is signed in.
func Load() (*Store, error) {
	dir, err := defaultDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(dir, TokenFileName))
}

// LoadFrom reads the token file at the given path.
func LoadFrom(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the current bearer token, or "" if not signed in.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SignedIn reports whether a token is present.
func (s *Store) SignedIn() bool {
	return s.Token() != ""
}

// SetToken stores the token and persists it. Called once at login.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	// 0600: the token grants full account access
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return err
	}
	logger.Debug("Auth: token saved to %s", s.path)
	return nil
}

// Clear removes the token from memory and disk. Called once at logout.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	logger.Debug("Auth: token cleared")
	return nil
}
