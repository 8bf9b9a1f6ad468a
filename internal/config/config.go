// Package config provides configuration management for hfs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TokenSource identifies where the active token came from.
type TokenSource string

const (
	SourceFlag   TokenSource = "flag"
	SourceEnv    TokenSource = "env"
	SourceConfig TokenSource = "config"
	SourceNone   TokenSource = "none"
)

// Config holds the hfs configuration.
type Config struct {
	Endpoint     string `yaml:"endpoint,omitempty"`
	Token        string `yaml:"token,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`

	// tokenSource records where Token was resolved from; not persisted.
	tokenSource TokenSource
}

// Validate checks the endpoint when one is configured. A missing token is
// not an error here: read-only operations run unauthenticated.
func (c *Config) Validate() error {
	if c.Endpoint != "" && !strings.HasPrefix(c.Endpoint, "https://") && !strings.HasPrefix(c.Endpoint, "http://") {
		return fmt.Errorf("endpoint must be an http(s) URL, got %q", c.Endpoint)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override file values only if set and non-empty.
// Token precedence: HF_TOKEN → HUGGINGFACE_TOKEN → file value.
func (c *Config) LoadFromEnv() {
	if token := getEnvWithFallback("HF_TOKEN", "HUGGINGFACE_TOKEN"); token != "" {
		c.Token = token
		c.tokenSource = SourceEnv
	}
	if endpoint := os.Getenv("HF_ENDPOINT"); endpoint != "" {
		c.Endpoint = endpoint
	}
}

// ApplyFlagToken overrides the token with a CLI-supplied value, which wins
// over every other source.
func (c *Config) ApplyFlagToken(token string) {
	if token != "" {
		c.Token = token
		c.tokenSource = SourceFlag
	}
}

// TokenSource returns where the active token was resolved from.
func (c *Config) TokenSource() TokenSource {
	if c.Token == "" {
		return SourceNone
	}
	if c.tokenSource == "" {
		return SourceConfig
	}
	return c.tokenSource
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "hfs", "config.yml")
	}

	// Fall back to ~/.config/hfs/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".hfs", "config.yml")
	}

	return filepath.Join(home, ".config", "hfs", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Restricted permissions, the file holds a credential
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file is not an error: every setting has a working default.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
