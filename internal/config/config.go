// Package config loads docspine-landing settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nondualworks/docspine-landing/internal/fonts"
	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

// Config is the full settings tree.
type Config struct {
	Theme    string         `mapstructure:"theme"`
	Log      LogConfig      `mapstructure:"log"`
	Fonts    FontsConfig    `mapstructure:"fonts"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Playback PlaybackConfig `mapstructure:"playback"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// FontsConfig controls the stylesheet prefetch.
type FontsConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CatalogConfig points at an optional content override.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// PlaybackConfig controls the terminal replay.
type PlaybackConfig struct {
	Speed float64 `mapstructure:"speed"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Theme: styles.DefaultMode.String(),
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Fonts: FontsConfig{
			Enabled: true,
			URL:     fonts.StylesheetURL,
			Timeout: fonts.DefaultTimeout,
		},
		Playback: PlaybackConfig{Speed: 1},
	}
}

// ThemeMode parses the configured theme.
func (c Config) ThemeMode() (styles.ThemeMode, error) {
	return styles.ParseThemeMode(c.Theme)
}

// Validate checks the settings for values the program cannot run with.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.ThemeMode(); err != nil {
		errs = append(errs, fmt.Errorf("theme: %w", err))
	}
	if c.Playback.Speed <= 0 {
		errs = append(errs, fmt.Errorf("playback.speed must be greater than 0, got %v", c.Playback.Speed))
	}
	if c.Fonts.Timeout < 0 {
		errs = append(errs, fmt.Errorf("fonts.timeout must not be negative, got %s", c.Fonts.Timeout))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		errs = append(errs, errors.New("log.max_size_mb and log.max_backups must not be negative"))
	}
	if c.Fonts.Enabled && strings.TrimSpace(c.Fonts.URL) == "" {
		errs = append(errs, errors.New("fonts.url is required when fonts are enabled"))
	}
	return errors.Join(errs...)
}
