// Package config loads the service and CLI configuration from a TOML file.
// Every field has a default; a config file only overrides what it names.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/avolio/flightgrid/matrix"
	"github.com/avolio/flightgrid/rows"
)

// Config is the top-level configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Cache   CacheConfig   `toml:"cache"`
	Logging LoggingConfig `toml:"logging"`
	Parse   ParseConfig   `toml:"parse"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr                string `toml:"addr"`
	ReadTimeoutSeconds  int    `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `toml:"write_timeout_seconds"`
	MaxUploadBytes      int64  `toml:"max_upload_bytes"`
}

// CacheConfig configures the parse cache.
type CacheConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// ParseConfig holds the default extraction settings applied when a request
// does not override them.
type ParseConfig struct {
	Year         int    `toml:"year"`
	Month        int    `toml:"month"`
	Strategy     string `toml:"strategy"`
	DateFormat   string `toml:"date_format"`
	PadFullMonth bool   `toml:"pad_full_month"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 60,
			MaxUploadBytes:      10 << 20,
		},
		Cache: CacheConfig{
			Path: "flightgrid.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Parse: ParseConfig{
			Strategy:   "auto",
			DateFormat: "dd-mm",
		},
	}
}

// Load reads a TOML config file on top of the defaults and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values against the vocabularies the extraction
// pipeline accepts.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive")
	}
	if c.Cache.Path == "" {
		return fmt.Errorf("cache.path must not be empty")
	}
	if c.Parse.Month < 0 || c.Parse.Month > 12 {
		return fmt.Errorf("parse.month must be 1-12, got %d", c.Parse.Month)
	}
	if _, err := rows.ParseKind(c.Parse.Strategy); err != nil {
		return fmt.Errorf("parse.strategy: %w", err)
	}
	if _, err := matrix.ParseDateFormat(c.Parse.DateFormat); err != nil {
		return fmt.Errorf("parse.date_format: %w", err)
	}
	return nil
}
