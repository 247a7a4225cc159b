package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.HTTP.Address != "127.0.0.1" {
		t.Errorf("Expected address 127.0.0.1, got %q", cfg.HTTP.Address)
	}
	if cfg.HTTP.Port != "8080" {
		t.Errorf("Expected port 8080, got %q", cfg.HTTP.Port)
	}
	if cfg.Remote.Timeout != 30*time.Second {
		t.Errorf("Expected 30s remote timeout, got %v", cfg.Remote.Timeout)
	}
	if cfg.Cache.Backend != CacheBackendBolt {
		t.Errorf("Expected bolt cache backend, got %q", cfg.Cache.Backend)
	}
	if cfg.Refresh.Interval != 0 {
		t.Errorf("Expected refresh disabled by default, got %v", cfg.Refresh.Interval)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
http:
  address: "0.0.0.0"
  port: "9090"
remote:
  config_url: "https://example.com/app_config.json"
  timeout: 10s
cache:
  backend: "file"
  path: "/var/cache/catalog"
refresh:
  interval: 1h
log_level: "DEBUG"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.HTTP.Address != "0.0.0.0" {
		t.Errorf("Expected address 0.0.0.0, got %q", cfg.HTTP.Address)
	}
	if cfg.HTTP.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.HTTP.Port)
	}
	if cfg.Remote.ConfigURL != "https://example.com/app_config.json" {
		t.Errorf("Unexpected remote config URL %q", cfg.Remote.ConfigURL)
	}
	if cfg.Remote.Timeout != 10*time.Second {
		t.Errorf("Expected 10s timeout, got %v", cfg.Remote.Timeout)
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("Expected file backend, got %q", cfg.Cache.Backend)
	}
	if cfg.Refresh.Interval != time.Hour {
		t.Errorf("Expected 1h refresh interval, got %v", cfg.Refresh.Interval)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("Expected DEBUG log level, got %q", cfg.LogLevel)
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  port: \"3000\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.HTTP.Port != "3000" {
		t.Errorf("Expected port 3000, got %q", cfg.HTTP.Port)
	}
	if cfg.HTTP.Address != "127.0.0.1" {
		t.Errorf("Expected default address to survive, got %q", cfg.HTTP.Address)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	t.Setenv("HTTP_PORT", "4000")
	t.Setenv("REMOTE_TIMEOUT", "5s")
	t.Setenv("CACHE_BACKEND", "FILE")
	t.Setenv("CACHE_PATH", "cache-dir")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.Port != "4000" {
		t.Errorf("Expected port 4000, got %q", cfg.HTTP.Port)
	}
	if cfg.Remote.Timeout != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.Remote.Timeout)
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("Expected backend to be lowercased, got %q", cfg.Cache.Backend)
	}
	if !filepath.IsAbs(cfg.Cache.Path) {
		t.Errorf("Expected cache path to be absolute, got %q", cfg.Cache.Path)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("Expected log level to be uppercased, got %q", cfg.LogLevel)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	tests := []struct {
		name  string
		value string
	}{
		{"not a duration", "soon"},
		{"zero", "0s"},
		{"negative", "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REMOTE_TIMEOUT", tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Expected error for REMOTE_TIMEOUT=%q", tt.value)
			}
		})
	}
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation to fail for the zero config")
	}

	for _, fragment := range []string{
		"HTTP address is required",
		"HTTP port is required",
		"Remote config URL is required",
		"Remote timeout must be positive",
		"Cache backend",
		"Cache path is required",
		"Log level",
	} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("Expected validation error to mention %q, got: %v", fragment, err)
		}
	}
}

func TestValidate_Backend(t *testing.T) {
	cfg := Default()
	cfg.Cache.Backend = "redis"

	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for unknown cache backend")
	}
}

func TestValidate_NegativeRefreshInterval(t *testing.T) {
	cfg := Default()
	cfg.Refresh.Interval = -time.Minute

	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for negative refresh interval")
	}
}
