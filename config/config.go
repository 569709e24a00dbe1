// Package config loads formdocs settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Transport names accepted by the serve command.
const (
	TransportStdio      = "stdio"
	TransportSDKStdio   = "sdk-stdio"
	TransportHTTP       = "http"
	TransportSSE        = "sse"
	TransportStreamable = "streamable"
)

// Environment variables that override file settings.
const (
	EnvTransport = "FORMDOCS_TRANSPORT"
	EnvAddr      = "FORMDOCS_ADDR"
	EnvDocsDir   = "FORMDOCS_DOCS_DIR"
	EnvLogLevel  = "FORMDOCS_LOG_LEVEL"
)

// ErrInvalidConfig is returned when a loaded configuration fails Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the formdocs configuration file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	// DocsDir replaces the embedded knowledge base when non-empty.
	DocsDir string       `yaml:"docs_dir,omitempty"`
	Log     LogConfig    `yaml:"log"`
	Search  SearchConfig `yaml:"search"`
}

// ServerConfig selects the server identity and transport.
type ServerConfig struct {
	Name      string `yaml:"name"`
	Version   string `yaml:"version"`
	Transport string `yaml:"transport"`
	Addr      string `yaml:"addr"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SearchConfig controls knowledge base search.
type SearchConfig struct {
	Limit int `yaml:"limit"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Name:      "dynamic-forms-mcp",
			Version:   "1.0.0",
			Transport: TransportStdio,
			Addr:      ":8080",
		},
		Log:    LogConfig{Level: "info"},
		Search: SearchConfig{Limit: 10},
	}
}

// Load reads the YAML file at path over Default and applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvTransport); ok && v != "" {
		c.Server.Transport = v
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvDocsDir); ok {
		c.DocsDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate checks the transport, log level and search limit.
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case TransportStdio, TransportSDKStdio, TransportHTTP, TransportSSE, TransportStreamable:
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidConfig, c.Server.Transport)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Search.Limit <= 0 {
		return fmt.Errorf("%w: search.limit must be positive, got %d", ErrInvalidConfig, c.Search.Limit)
	}
	return nil
}

// SlogLevel maps Level to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return 0, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return level, nil
}
