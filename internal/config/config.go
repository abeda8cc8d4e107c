// Package config loads ledgerd settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" (colored, for terminals) or "json".
	LogFormat string `yaml:"log_format"`

	// AuthSecret is the HS256 secret used to verify bearer tokens.
	// Authentication is disabled when empty.
	AuthSecret string `yaml:"auth_secret"`

	// MetricsPath is where Prometheus metrics are served.
	MetricsPath string `yaml:"metrics_path"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:        ":8080",
		LogLevel:    "info",
		LogFormat:   "text",
		MetricsPath: "/metrics",
	}
}

// Load reads path (if not empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Addr = getEnv("LEDGER_ADDR", c.Addr)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.AuthSecret = getEnv("LEDGER_AUTH_SECRET", c.AuthSecret)
	c.MetricsPath = getEnv("LEDGER_METRICS_PATH", c.MetricsPath)
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log_format %q", c.LogFormat))
	}
	if !strings.HasPrefix(c.MetricsPath, "/") {
		errs = append(errs, fmt.Errorf("metrics_path must start with /: %q", c.MetricsPath))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
