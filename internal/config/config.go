// Package config loads the application configuration from an optional YAML
// file, with defaults suitable for running without one.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "30s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config configures the dashboard server and image fetching.
type Config struct {
	// Listen is the address the dashboard server binds to.
	Listen string `yaml:"listen"`

	// FetchTimeout bounds remote image downloads.
	FetchTimeout Duration `yaml:"fetch_timeout"`

	// CacheDir overrides where downloaded images are cached.
	CacheDir string `yaml:"cache_dir"`

	// DefaultImage is an optional image path or URL loaded into the
	// session at startup.
	DefaultImage string `yaml:"default_image"`

	// ColormapSize is the initial requested colormap length.
	ColormapSize int `yaml:"colormap_size"`
}

func (c *Config) defaults() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8675"
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = Duration(10 * time.Second)
	}
	if addr := os.Getenv("COLORDROPPER_LISTEN"); addr != "" {
		c.Listen = addr
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

// DefaultPath returns the conventional config file location:
// ~/.config/colordropper/config.yaml (following os.UserConfigDir).
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(base, "colordropper", "config.yaml"), nil
}

// Load reads the YAML config at path. A missing file is not an error:
// defaults are returned. An unparseable file is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified config path, intended to be read
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.defaults()
	return c, nil
}
