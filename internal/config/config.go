package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration, parsed from the environment.
// Flags may override individual fields after Load.
type Config struct {
	// DBPath overrides the default SQLite database location.
	DBPath string `env:"EDUDECK_DB"`

	// Addr is the listen address for the serve command.
	Addr string `env:"EDUDECK_ADDR" envDefault:":8080"`

	// FastCatalog disables the simulated catalog latency. Tests and
	// the HTTP server enable this; the TUI keeps the delay so loading
	// states stay visible.
	FastCatalog bool `env:"EDUDECK_FAST_CATALOG"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
