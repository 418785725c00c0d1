// Package config loads the boxbuilder configuration file and stores user
// preferences, both as TOML under the XDG config directory
// ($XDG_CONFIG_HOME/boxbuilder, else ~/.config/boxbuilder).
//
// Precedence is flags, then config file, then built-in defaults. Callers
// apply flags on top of the Config returned by Load.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// AppName names the config and cache directories.
const AppName = "boxbuilder"

const (
	ConfigFile = "config.toml"
	PrefsFile  = "prefs.toml"
)

// Config is the contents of config.toml.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

type RenderConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Scale  float64 `toml:"scale"`
}

type CacheConfig struct {
	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`
	// RedisAddr selects the Redis backend when set.
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
	Disabled  bool     `toml:"disabled"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as "24h" in TOML.
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Render: RenderConfig{Width: 800, Height: 1000, Scale: 2},
		Cache:  CacheConfig{TTL: Duration{7 * 24 * time.Hour}},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// CacheDir returns the default file cache directory
// ($XDG_CACHE_HOME/boxbuilder, else ~/.cache/boxbuilder).
func CacheDir() (string, error) {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return filepath.Join(v, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads config.toml from the config directory. A missing file yields
// the defaults.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), err
	}
	return LoadFile(filepath.Join(dir, ConfigFile))
}

// LoadFile reads path over the defaults. Keys absent from the file keep
// their default values.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects values that cannot render.
func (c Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render: width and height must be positive")
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("render: scale must be positive")
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("cache: ttl must not be negative")
	}
	return nil
}

// CacheDirOrDefault returns Cache.Dir, or CacheDir when unset.
func (c Config) CacheDirOrDefault() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return CacheDir()
}
