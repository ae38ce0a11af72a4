// Package config loads settings for the rewind demo binary from a TOML
// file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultMaxEntries is used when the config file is absent or does not set
// a limit.
const DefaultMaxEntries = 1000

// Config holds the demo binary's settings.
type Config struct {
	// MaxEntries caps the undo history kept per scope.
	MaxEntries int `toml:"max_entries"`
}

// Default returns a config with every field at its default.
func Default() *Config {
	return &Config{MaxEntries: DefaultMaxEntries}
}

// Load reads the config from path. A missing file is not an error; the
// defaults are returned. Fields not set in the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	return cfg, nil
}
