// Package config loads splitpack configuration from TOML files.
//
// Configuration is optional: every field has a working default, and
// CLI flags override whatever the file provides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig indicates a config file that parsed but holds
// out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration document.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig controls the layout pipeline defaults.
type LayoutConfig struct {
	// Engine selects the secondary layout: a graphviz engine name
	// (dot, neato, fdp, circo, twopi) or "circular" for the builtin.
	Engine string `toml:"engine"`

	// TargetRatio is the desired width/height ratio of the packing.
	TargetRatio float64 `toml:"target_ratio"`

	// Border is the padding added around each component box.
	Border float64 `toml:"border"`
}

// RenderConfig controls output artifacts.
type RenderConfig struct {
	// Formats lists artifact formats to produce ("svg", "json").
	Formats []string `toml:"formats"`

	// Margin is the whitespace around the drawing in SVG output.
	Margin float64 `toml:"margin"`

	// Labels toggles node ID labels in SVG output.
	Labels bool `toml:"labels"`
}

// CacheConfig selects and configures the layout cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis" or "none".
	Backend string `toml:"backend"`

	// Dir is the file backend's directory.
	Dir string `toml:"dir"`

	// RedisAddr is the redis backend's address (host:port).
	RedisAddr string `toml:"redis_addr"`
}

// StoreConfig configures the persistent layout store.
type StoreConfig struct {
	// URI is the MongoDB connection string. Empty disables the store.
	URI string `toml:"uri"`

	// Database is the database name.
	Database string `toml:"database"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			Engine:      "dot",
			TargetRatio: 1.0,
			Border:      30,
		},
		Render: RenderConfig{
			Formats: []string{"svg"},
			Margin:  10,
			Labels:  true,
		},
		Cache: CacheConfig{
			Backend: "file",
			Dir:     defaultCacheDir(),
		},
		Store: StoreConfig{
			Database: "splitpack",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads a TOML config file, layering it over the defaults. A
// missing file is not an error and yields the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges and enum fields.
func (c Config) Validate() error {
	if c.Layout.TargetRatio <= 0 {
		return fmt.Errorf("%w: layout.target_ratio must be positive, got %v", ErrInvalidConfig, c.Layout.TargetRatio)
	}
	if c.Layout.Border < 0 {
		return fmt.Errorf("%w: layout.border must be non-negative, got %v", ErrInvalidConfig, c.Layout.Border)
	}
	switch c.Cache.Backend {
	case "file", "redis", "none":
	default:
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidConfig, c.Cache.Backend)
	}
	for _, f := range c.Render.Formats {
		switch f {
		case "svg", "json":
		default:
			return fmt.Errorf("%w: unknown render format %q", ErrInvalidConfig, f)
		}
	}
	return nil
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".splitpack-cache"
	}
	return filepath.Join(base, "splitpack")
}
