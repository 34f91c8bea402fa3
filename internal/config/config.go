// Package config loads runtime configuration from the environment.
//
// Configuration comes from environment variables, optionally seeded from a
// .env file in the working directory (godotenv — handy in development, a
// no-op in production where real env vars are set). envconfig then maps the
// variables onto the Config struct via tags, including required-ness and
// defaults, so the rules live next to the fields instead of in hand-written
// os.Getenv plumbing.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the process needs to start.
//
// DB_DSN is deliberately required with no default: the server must refuse to
// start without a snippet store rather than come up half-initialized and
// fail on the first request.
type Config struct {
	// DSN is the connection string for the snippet store: the directory the
	// database lives in.
	DSN string `envconfig:"DB_DSN" required:"true"`

	// DBName selects the database within the store.
	DBName string `envconfig:"DB_NAME" default:"codesnippetdb"`

	// Port is the HTTP listen port.
	Port int `envconfig:"PORT" default:"5000"`
}

// Load reads the .env file if present, then the environment. A missing
// required variable is an error the caller treats as fatal.
func Load() (*Config, error) {
	// Ignore the error: no .env file simply means the environment is
	// already populated.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// envconfig's required check only fires on a fully unset variable;
	// DB_DSN set to the empty string must refuse startup just the same.
	if cfg.DSN == "" {
		return nil, fmt.Errorf("config: DB_DSN is required")
	}
	return &cfg, nil
}

// DatabasePath resolves the store's on-disk location from DSN and DBName.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DSN, c.DBName+".db")
}
