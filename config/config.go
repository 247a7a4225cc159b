// Package config loads the local process configuration from a YAML file
// with environment variable overrides. This is the machine-local
// configuration; the remote behavior descriptor lives in remoteconfig.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache backends selectable via cache.backend.
const (
	CacheBackendBolt = "bolt"
	CacheBackendFile = "file"
)

// Config holds the complete local configuration.
type Config struct {
	// HTTP server settings for the consumer surface
	HTTP struct {
		Address string `yaml:"address"`
		Port    string `yaml:"port"`
	} `yaml:"http"`

	// Remote document settings
	Remote struct {
		ConfigURL string        `yaml:"config_url"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"remote"`

	// Cache settings
	Cache struct {
		Backend string `yaml:"backend"`
		Path    string `yaml:"path"`
	} `yaml:"cache"`

	// Refresh settings; a zero interval disables the timer
	Refresh struct {
		Interval time.Duration `yaml:"interval"`
	} `yaml:"refresh"`

	// Logging settings
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cfg := &Config{}

	cfg.HTTP.Address = "127.0.0.1"
	cfg.HTTP.Port = "8080"

	cfg.Remote.ConfigURL = "https://raw.githubusercontent.com/alorle/iptv-catalog/main/app_config.json"
	cfg.Remote.Timeout = 30 * time.Second

	cfg.Cache.Backend = CacheBackendBolt
	cfg.Cache.Path = "iptv-catalog.db"

	cfg.Refresh.Interval = 0

	cfg.LogLevel = "INFO"

	return cfg
}

// LoadFromFile loads configuration from a YAML file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a file (if present) and applies
// environment variable overrides, then validates the result.
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg = Default()
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate performs validation on the configuration, collecting every
// problem into a single error.
func (c *Config) Validate() error {
	var errs []string

	if c.HTTP.Address == "" {
		errs = append(errs, "HTTP address is required")
	}
	if c.HTTP.Port == "" {
		errs = append(errs, "HTTP port is required")
	}

	if c.Remote.ConfigURL == "" {
		errs = append(errs, "Remote config URL is required")
	}
	if c.Remote.Timeout <= 0 {
		errs = append(errs, "Remote timeout must be positive")
	}

	switch c.Cache.Backend {
	case CacheBackendBolt, CacheBackendFile:
	default:
		errs = append(errs, fmt.Sprintf("Cache backend must be %q or %q", CacheBackendBolt, CacheBackendFile))
	}
	if c.Cache.Path == "" {
		errs = append(errs, "Cache path is required")
	}

	if c.Refresh.Interval < 0 {
		errs = append(errs, "Refresh interval cannot be negative")
	}

	validLevels := map[string]bool{"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true}
	if !validLevels[strings.ToUpper(c.LogLevel)] {
		errs = append(errs, "Log level must be one of: DEBUG, INFO, WARN, ERROR")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration.
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("HTTP_ADDRESS"); val != "" {
		cfg.HTTP.Address = val
	}
	if val := os.Getenv("HTTP_PORT"); val != "" {
		cfg.HTTP.Port = val
	}

	if val := os.Getenv("REMOTE_CONFIG_URL"); val != "" {
		cfg.Remote.ConfigURL = val
	}
	if val := os.Getenv("REMOTE_TIMEOUT"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid REMOTE_TIMEOUT format (expected duration like '30s', '1m'): %w", err)
		}
		if duration <= 0 {
			return fmt.Errorf("REMOTE_TIMEOUT must be positive, got: %s", val)
		}
		cfg.Remote.Timeout = duration
	}

	if val := os.Getenv("CACHE_BACKEND"); val != "" {
		cfg.Cache.Backend = strings.ToLower(val)
	}
	if val := os.Getenv("CACHE_PATH"); val != "" {
		absPath, err := normalizePath(val)
		if err != nil {
			return err
		}
		cfg.Cache.Path = absPath
	}

	if val := os.Getenv("REFRESH_INTERVAL"); val != "" {
		duration, err := time.ParseDuration(val)
		if err != nil {
			return fmt.Errorf("invalid REFRESH_INTERVAL format (expected duration like '1h', '30m'): %w", err)
		}
		cfg.Refresh.Interval = duration
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.LogLevel = strings.ToUpper(val)
	}

	return nil
}

// normalizePath resolves a path to an absolute one.
func normalizePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s: %w", path, err)
	}
	return absPath, nil
}
