// Package config loads optional CLI defaults from a TOML file, mirroring
// danieldk/citar's cmd/common config loader.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults that flags may override.
type Config struct {
	Sentinel string `toml:"sentinel"`
	LogLevel string `toml:"log_level"`
	JSON     bool   `toml:"json"`
}

func defaultConfig() *Config {
	return &Config{
		Sentinel: "$",
		LogLevel: "info",
		JSON:     false,
	}
}

// Load reads filename and decodes it as TOML over the package defaults.
// A missing filename is not an error; defaults are returned unchanged so
// callers can treat --config as always-optional.
func Load(filename string) (*Config, error) {
	cfg := defaultConfig()
	if filename == "" {
		return cfg, nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("config: cannot open %s: %w", filename, err)
	}
	defer f.Close()

	return Parse(f, cfg)
}

// Parse decodes TOML from r over cfg. Exported separately from Load so
// tests can exercise it against an in-memory reader.
func Parse(r io.Reader, cfg *Config) (*Config, error) {
	if cfg == nil {
		cfg = defaultConfig()
	}
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	return cfg, nil
}
