package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "quaver"

// Environment variables read at startup.
const (
	EnvConfig   = "QUAVER_CONFIG"    // extra config file, highest priority
	EnvLogLevel = "QUAVER_LOG_LEVEL" // overrides log.level
)

type Config struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Defaults for the display settings that were never changed in the UI
	Display DisplayConfig `koanf:"display"`

	Log LogConfig `koanf:"log"`

	// Album art thumbnails
	ArtCache ArtCacheConfig `koanf:"art_cache"`
}

// DisplayConfig holds the queue list defaults.
type DisplayConfig struct {
	RowHeight             int      `koanf:"row_height"` // lines per row (1-4, default: 1)
	FontSize              int      `koanf:"font_size"`  // 8-24, default: 13
	ScrollWithCurrentSong bool     `koanf:"scroll_with_current_song"`
	CacheImages           bool     `koanf:"cache_images"`
	Volume                *float64 `koanf:"volume"` // 0.0-1.0 (default: 1.0)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/quaver/quaver.log
}

// ArtCacheConfig holds album art cache configuration.
type ArtCacheConfig struct {
	Dir        string `koanf:"dir"`          // default: $XDG_CACHE_HOME/quaver/albumart
	ThumbWidth int    `koanf:"thumb_width"`  // pixels (default: 128)
	MaxAgeDays int    `koanf:"max_age_days"` // prune older entries (default: 90)
}

// Load reads .env, then the config files in priority order.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return LoadFrom(getConfigPaths())
}

// LoadFrom reads the given TOML files; later files override earlier ones.
// Missing files are skipped.
func LoadFrom(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.ArtCache.Dir = expandPath(cfg.ArtCache.Dir)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{
		// 1. $XDG_CONFIG_HOME/quaver/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd)
		"config.toml",
	}

	// 3. $QUAVER_CONFIG (highest priority)
	if extra := os.Getenv(EnvConfig); extra != "" {
		paths = append(paths, expandPath(extra))
	}

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetDisplay returns the display configuration with defaults applied.
func (c *Config) GetDisplay() DisplayConfig {
	cfg := c.Display

	if cfg.RowHeight <= 0 {
		cfg.RowHeight = 1
	}
	if cfg.RowHeight > 4 {
		cfg.RowHeight = 4
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = 13
	}
	volume := 1.0
	if cfg.Volume != nil && *cfg.Volume >= 0 && *cfg.Volume <= 1 {
		volume = *cfg.Volume
	}
	cfg.Volume = &volume

	return cfg
}

// GetLog returns the logging configuration with defaults applied.
func (c *Config) GetLog() LogConfig {
	cfg := c.Log
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Level = "info"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	return cfg
}

// GetArtCache returns the album art cache configuration with defaults applied.
func (c *Config) GetArtCache() ArtCacheConfig {
	cfg := c.ArtCache
	if cfg.Dir == "" {
		cfg.Dir = filepath.Join(xdg.CacheHome, appName, "albumart")
	}
	if cfg.ThumbWidth <= 0 {
		cfg.ThumbWidth = 128
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 90
	}
	return cfg
}
