// Package config loads runtime settings from defaults, an optional YAML file,
// and environment variables, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// Config holds all settings for the shortcut service and CLI.
type Config struct {
	// Addr is the HTTP listen address for `serve`.
	Addr string `yaml:"addr"`

	// Backend selects the persistence surface: "file" or "bolt".
	Backend string `yaml:"backend"`

	// Path is the data directory. The bolt backend keeps shortcuts.bolt in it.
	Path string `yaml:"path"`

	// Key is the storage key the collection is written under.
	Key string `yaml:"key"`

	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     ":8080",
		Backend:  BackendFile,
		Path:     defaultDataDir(),
		Key:      "shortcuts",
		LogLevel: "info",
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "shortcuts-data"
	}
	return filepath.Join(dir, "shortcuts")
}

// Load builds the configuration. path may be empty; a named file that does
// not exist is an error. The result is not validated so callers can layer
// flag overrides on top before calling Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if v := os.Getenv("SHORTCUT_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("SHORTCUT_PATH"); v != "" {
		c.Path = v
	}
	if v := os.Getenv("SHORTCUT_KEY"); v != "" {
		c.Key = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendFile, BackendBolt:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	switch {
	case c.Key == "":
		errs = append(errs, errors.New("storage key is empty"))
	case c.Key == "." || c.Key == ".." || strings.ContainsAny(c.Key, `/\`):
		errs = append(errs, fmt.Errorf("invalid storage key %q", c.Key))
	}
	if c.Path == "" {
		errs = append(errs, errors.New("storage path is empty"))
	}
	return errors.Join(errs...)
}
