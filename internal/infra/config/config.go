// Package config provides runtime configuration for membridge.
// Values come from an optional YAML file merged with environment variables;
// the environment always wins. The API key has no default — without it the
// adapter cannot authenticate a single call, so loading fails before any
// tool is served.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the transport credential and serving options.
// It is built once at startup and never mutated afterwards.
type Config struct {
	APIKey   string `yaml:"api_key"`   // API_KEY — required
	APIURL   string `yaml:"api_url"`   // API_URL — default: DefaultAPIURL
	HTTPAddr string `yaml:"http_addr"` // listen address for --http mode
}

// DefaultAPIURL is the remote memory service endpoint used when API_URL is unset.
const DefaultAPIURL = "https://api.membridge.io"

const (
	envKeyAPIKey = "API_KEY"
	envKeyAPIURL = "API_URL"
)

// ErrMissingAPIKey is returned by Load when no API key is configured.
var ErrMissingAPIKey = fmt.Errorf("%s is not set", envKeyAPIKey)

// Load builds the configuration from the YAML file at path (optional, may be
// empty) overlaid with environment variables. It fails when the file cannot
// be read or when no API key is present after the merge.
func Load(path string) (Config, error) {
	cfg := Config{APIURL: DefaultAPIURL}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		if cfg.APIURL == "" {
			cfg.APIURL = DefaultAPIURL
		}
	}

	cfg.APIKey = envOr(envKeyAPIKey, cfg.APIKey)
	cfg.APIURL = envOr(envKeyAPIURL, cfg.APIURL)

	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	return cfg, nil
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
