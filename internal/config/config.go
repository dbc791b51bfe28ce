// Package config provides configuration loading for the semowl CLI and
// server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy names accepted in the parse section.
const (
	PolicySkipName = "skip"
	PolicyFailName = "fail"
)

// Config is the complete semowl configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Server ServerConfig `yaml:"server"`
	Parse  ParseConfig  `yaml:"parse"`
}

// StoreConfig configures the document store.
type StoreConfig struct {
	// Path is the BadgerDB directory.
	Path string `yaml:"path"`
}

// ServerConfig configures the HTTP endpoint.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
}

// ParseConfig configures the loader.
type ParseConfig struct {
	// Policy is what to do with unrecognizable lines: "skip" or "fail".
	Policy string `yaml:"policy"`

	// ProgressEvery is how many lines pass between progress reports.
	ProgressEvery int `yaml:"progress_every"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Store:  StoreConfig{Path: "./semowl_data"},
		Server: ServerConfig{Addr: "localhost:8080"},
		Parse:  ParseConfig{Policy: PolicySkipName, ProgressEvery: 1000},
	}
}

// Load returns the defaults overlaid with the given file, when one is
// named. A missing named file is an error; an empty path is not.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the rest of the program
// cannot work with.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	switch c.Parse.Policy {
	case PolicySkipName, PolicyFailName:
	default:
		return fmt.Errorf("parse.policy must be %q or %q, got %q",
			PolicySkipName, PolicyFailName, c.Parse.Policy)
	}
	if c.Parse.ProgressEvery < 0 {
		return fmt.Errorf("parse.progress_every must not be negative")
	}
	return nil
}
