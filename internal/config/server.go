// Package config loads configuration for both binaries.
//
// The server reads environment variables (the natural interface for a
// deployed process); the CLI client reads a YAML file in the user's config
// directory plus env overrides (the natural interface for a tool a human
// runs by hand). Same package, two entry points.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds the note service's configuration, parsed from environment
// variables via struct tags. envDefault keeps local development zero-setup:
// only JWT_SECRET has no sane default, so only it is required.
type Server struct {
	Port     int           `env:"PORT"       envDefault:"8080"`
	DBPath   string        `env:"DB_PATH"    envDefault:"data/notekeeper.db"`
	TokenTTL time.Duration `env:"TOKEN_TTL"  envDefault:"24h"`

	// JWTSecret signs every issued token. Generate one with:
	//   JWT_SECRET=$(openssl rand -hex 32)
	JWTSecret string `env:"JWT_SECRET,required"`
}

// LoadServer parses the environment into a Server config.
func LoadServer() (*Server, error) {
	cfg := &Server{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}
	return cfg, nil
}
