package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI configuration loaded from the user's config file.
//
// The file lives at ~/.config/gridsynth/config.toml (XDG_CONFIG_HOME is
// honored). A missing file yields defaults; a malformed file is an error so
// typos don't silently fall back.
//
// Example:
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//
//	[render]
//	scale = 16
//
//	[serve]
//	addr = ":8080"
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// CacheConfig selects and configures the artifact cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"` // "file" (default), "redis", "none"
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig selects and configures the archive store backend.
type StoreConfig struct {
	Backend       string `toml:"backend"` // "file" (default), "mongo"
	Dir           string `toml:"dir"`     // file backend; defaults to XDG data dir
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// RenderConfig holds render defaults.
type RenderConfig struct {
	Scale int `toml:"scale"` // cell edge length in pixels
}

// ServeConfig holds HTTP API defaults.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Cache:  CacheConfig{Backend: "file", RedisAddr: "localhost:6379"},
		Store:  StoreConfig{Backend: "file", MongoURI: "mongodb://localhost:27017"},
		Render: RenderConfig{Scale: 8},
		Serve:  ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the user's config file, applying defaults for absent
// fields. A missing file is not an error.
func LoadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFile(path)
}

// loadConfigFile reads and parses one config file.
func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Render.Scale < 1 {
		cfg.Render.Scale = DefaultConfig().Render.Scale
	}
	return cfg, nil
}

// configPath returns the config file path using XDG standard.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
