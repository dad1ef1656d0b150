// Package config loads service configuration from YAML, falling back to
// compiled-in defaults when no file is provided.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable settings of the service and CLI.
type Config struct {
	// SieveBound is the upper limit for sieve candidates.
	SieveBound int `yaml:"sieve_bound"`

	// ListenAddr is the HTTP listen address of the API server.
	ListenAddr string `yaml:"listen_addr"`

	// AllowedOrigin is the CORS allowed origin for the API server.
	AllowedOrigin string `yaml:"allowed_origin"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		SieveBound:    100,
		ListenAddr:    ":8080",
		AllowedOrigin: "*",
	}
}

// Load reads a YAML config file. Missing keys keep their default values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.SieveBound < 2 {
		return Config{}, fmt.Errorf("invalid config %s: sieve_bound must be >= 2, got %d", path, cfg.SieveBound)
	}

	return cfg, nil
}
