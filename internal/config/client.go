package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is where the notes CLI points when nothing else is
// configured — the local development server.
const DefaultBaseURL = "http://localhost:8080"

// Client holds the CLI's configuration.
//
// Source priority (highest wins):
//  1. command-line flags (applied by the CLI after loading)
//  2. environment variables (NOTEKEEPER_BASE_URL)
//  3. ~/.config/notekeeper/config.yaml
//  4. built-in defaults
type Client struct {
	// BaseURL is the address of the note service.
	BaseURL string `yaml:"base_url"`

	// TokenPath overrides where the session token file lives.
	// Empty means the default (~/.config/notekeeper/token).
	TokenPath string `yaml:"token_path"`
}

// ClientDir returns the CLI's config directory (~/.config/notekeeper).
func ClientDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "notekeeper"), nil
}

// LoadClient reads the client config. A missing file is not an error —
// defaults apply; a present-but-broken file is, because silently ignoring
// a typo'd config confuses everyone.
func LoadClient(path string) (*Client, error) {
	cfg := &Client{BaseURL: DefaultBaseURL}

	if path == "" {
		dir, err := ClientDir()
		if err == nil {
			path = filepath.Join(dir, "config.yaml")
		}
	}

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: invalid config file %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("NOTEKEEPER_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return cfg, nil
}
