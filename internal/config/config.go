// Package config manages persistent client settings for the M terminal client.
// Settings live in ~/.mbot/config.json. The bearer token is deliberately kept
// out of this file; see the auth package.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// DefaultServerURL is the backend origin used when none is configured.
const DefaultServerURL = "http://localhost:5000"

// Config holds the client configuration
type Config struct {
	ServerURL            string `json:"server_url"`                      // Backend base origin
	UserID               string `json:"user_id,omitempty"`               // Cached id of the signed-in user
	Theme                string `json:"theme,omitempty"`                 // UI color theme name
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification when a reply lands off-page
	ReplyDelayMs         int    `json:"reply_delay_ms,omitempty"`        // Cosmetic delay before showing assistant replies
	SidebarOpen          *bool  `json:"sidebar_open,omitempty"`          // Sidebar visibility across restarts (default open)

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mbot"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		ServerURL: DefaultServerURL,
		filePath:  path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultServerURL
	}
	// MBOT_SERVER_URL overrides the file, matching how the web client read
	// its API origin from the environment at build time
	if env := os.Getenv("MBOT_SERVER_URL"); env != "" {
		cfg.ServerURL = env
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// SetFilePath overrides the path used by Save. Primarily for testing.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// GetServerURL returns the backend base origin
func (c *Config) GetServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ServerURL
}

// SetServerURL updates the backend base origin
func (c *Config) SetServerURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ServerURL = url
}

// GetTheme returns the saved theme name, or "" for the default
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme saves the theme name
func (c *Config) SetTheme(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = name
}

// GetUserID returns the cached user id, or "" if unknown
func (c *Config) GetUserID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.UserID
}

// SetUserID caches the signed-in user's id
func (c *Config) SetUserID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.UserID = id
}

// GetNotificationsEnabled returns whether desktop notifications are on
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled toggles desktop notifications
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetReplyDelayMs returns the cosmetic reply delay in milliseconds
func (c *Config) GetReplyDelayMs() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ReplyDelayMs
}

// GetSidebarOpen returns whether the sidebar should start open
func (c *Config) GetSidebarOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.SidebarOpen == nil {
		return true
	}
	return *c.SidebarOpen
}

// SetSidebarOpen persists the sidebar visibility preference
func (c *Config) SetSidebarOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SidebarOpen = &open
}
