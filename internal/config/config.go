package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "music-player"

// Defaults applied by the Get*Config getters.
const (
	DefaultCatalogURL       = "https://saavn.sumit.co/api"
	DefaultCatalogTimeout   = 15 // seconds
	DefaultQuality          = "320kbps"
	DefaultStatusIntervalMS = 250
	minStatusIntervalMS     = 50
	maxStatusIntervalMS     = 5000
)

type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Downloads DownloadsConfig `koanf:"downloads"`
	Storage   StorageConfig   `koanf:"storage"`
	Logging   LoggingConfig   `koanf:"logging"`
	Player    PlayerConfig    `koanf:"player"`

	// Media-key integration (linux only)
	MPRIS MPRISConfig `koanf:"mpris"`
}

// CatalogConfig holds the song catalog API settings.
type CatalogConfig struct {
	BaseURL          string `koanf:"base_url"`          // e.g., "https://saavn.sumit.co/api"
	TimeoutSeconds   int    `koanf:"timeout_seconds"`   // HTTP timeout (default: 15)
	PreferredQuality string `koanf:"preferred_quality"` // download URL quality (default: "320kbps")
}

// DownloadsConfig holds offline download settings.
type DownloadsConfig struct {
	Dir string `koanf:"dir"`
}

// StorageConfig selects the snapshot store.
type StorageConfig struct {
	Backend string `koanf:"backend"` // "sqlite" or "bolt" (default: "sqlite")
	Path    string `koanf:"path"`    // empty means the XDG data directory
}

// LoggingConfig holds the log file settings.
type LoggingConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
}

// PlayerConfig holds audio engine settings.
type PlayerConfig struct {
	StatusIntervalMS int `koanf:"status_interval_ms"` // position report interval (50-5000, default: 250)
}

// MPRISConfig holds desktop media-key settings.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	// Later files win
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

	cfg.Catalog.BaseURL = strings.TrimSuffix(cfg.Catalog.BaseURL, "/")

	if cfg.Downloads.Dir == "" {
		cfg.Downloads.Dir = filepath.Join(xdg.DataHome, appName, "downloads")
	}
	cfg.Downloads.Dir = expandPath(cfg.Downloads.Dir)

	if cfg.Storage.Path != "" {
		cfg.Storage.Path = expandPath(cfg.Storage.Path)
	}

	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}
	cfg.Logging.File = expandPath(cfg.Logging.File)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/music-player/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

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

// GetCatalogConfig returns the catalog configuration with defaults applied.
func (c *Config) GetCatalogConfig() CatalogConfig {
	cfg := c.Catalog
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultCatalogURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultCatalogTimeout
	}
	if cfg.PreferredQuality == "" {
		cfg.PreferredQuality = DefaultQuality
	}
	return cfg
}

// Timeout returns the catalog HTTP timeout.
func (c CatalogConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player
	switch {
	case cfg.StatusIntervalMS <= 0:
		cfg.StatusIntervalMS = DefaultStatusIntervalMS
	case cfg.StatusIntervalMS < minStatusIntervalMS:
		cfg.StatusIntervalMS = minStatusIntervalMS
	case cfg.StatusIntervalMS > maxStatusIntervalMS:
		cfg.StatusIntervalMS = maxStatusIntervalMS
	}
	return cfg
}

// StatusInterval returns the position report interval.
func (c PlayerConfig) StatusInterval() time.Duration {
	return time.Duration(c.StatusIntervalMS) * time.Millisecond
}

// MPRISEnabled returns true unless media keys are explicitly disabled.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}
