// Package config loads application configuration from TOML files.
//
// Configuration is optional: every field has a default, a missing config
// file is not an error, and a file only needs to name the fields it
// overrides. The default location follows the XDG standard
// (~/.config/lynxviz/config.toml).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperrors "github.com/lynxviz/lynxviz/pkg/errors"
	"github.com/lynxviz/lynxviz/pkg/layout"
)

const (
	appName    = "lynxviz"
	configFile = "config.toml"
)

// Cache backends.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Store backends.
const (
	StoreBackendMemory = "memory"
	StoreBackendMongo  = "mongo"
)

// Config is the full application configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
}

// LayoutConfig configures the layout engine defaults.
type LayoutConfig struct {
	Direction            string `toml:"direction"`
	HierarchicalMinNodes int    `toml:"hierarchical_min_nodes"`
	HierarchicalMinEdges int    `toml:"hierarchical_min_edges"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file backend's directory. Empty means the XDG
	// cache directory (~/.cache/lynxviz/).
	Dir string `toml:"dir"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	// Backend is "memory" or "mongo".
	Backend  string `toml:"backend"`
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Layout: LayoutConfig{
			Direction:            layout.DefaultDirection,
			HierarchicalMinNodes: layout.DefaultHierarchicalMinNodes,
			HierarchicalMinEdges: layout.DefaultHierarchicalMinEdges,
		},
		Cache: CacheConfig{
			Backend: CacheBackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Store: StoreConfig{
			Backend:  StoreBackendMemory,
			URI:      "mongodb://localhost:27017",
			Database: appName,
		},
	}
}

// Load reads configuration from path, layered over the defaults.
//
// An empty path means the default location; a missing file at the default
// location is not an error. A missing file at an explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidOptions, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultPath returns the config file path using the XDG standard
// (~/.config/lynxviz/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFile), nil
}

// Validate checks enum fields and value ranges.
func (c *Config) Validate() error {
	if err := apperrors.ValidateDirection(c.Layout.Direction); err != nil {
		return err
	}
	if c.Layout.HierarchicalMinNodes < 0 || c.Layout.HierarchicalMinEdges < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "hierarchical thresholds cannot be negative")
	}

	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendNone:
	default:
		return apperrors.New(apperrors.ErrCodeInvalidOptions,
			"unknown cache backend %q (expected file, redis, or none)", c.Cache.Backend)
	}

	switch c.Store.Backend {
	case StoreBackendMemory, StoreBackendMongo:
	default:
		return apperrors.New(apperrors.ErrCodeInvalidOptions,
			"unknown store backend %q (expected memory or mongo)", c.Store.Backend)
	}

	return nil
}

// LayoutOptions converts the layout section to engine options.
func (c *Config) LayoutOptions() layout.Options {
	return layout.Options{
		Direction:            c.Layout.Direction,
		HierarchicalMinNodes: c.Layout.HierarchicalMinNodes,
		HierarchicalMinEdges: c.Layout.HierarchicalMinEdges,
	}
}
