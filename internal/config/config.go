// Package config loads runtime settings for the percolate CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/percolation/report"
)

var (
	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("config: workers must be at least 1")
	// ErrEmptyPattern indicates an empty source file pattern.
	ErrEmptyPattern = errors.New("config: pattern must not be empty")
	// ErrInvalidDebounce indicates a non-positive watch debounce.
	ErrInvalidDebounce = errors.New("config: watch debounce must be positive")
	// ErrInvalidMaxSide indicates a non-positive grid side length limit.
	ErrInvalidMaxSide = errors.New("config: max side length must be at least 1")
)

// DefaultMaxSideLength caps a source's grid at 4096×4096 sites.
const DefaultMaxSideLength = 4096

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration for a percolate session.
// Values are populated from .percolate.yaml, PERCOLATE_* env vars, and CLI flags.
type Config struct {
	InputDir      string      `mapstructure:"input_dir"`
	Pattern       string      `mapstructure:"pattern"`
	Format        string      `mapstructure:"format"`
	Workers       int         `mapstructure:"workers"`
	PathHalving   bool        `mapstructure:"path_halving"`
	Verify        bool        `mapstructure:"verify"`
	MaxSideLength int         `mapstructure:"max_side_length"`
	LogLevel      string      `mapstructure:"log_level"`
	Verbose       bool        `mapstructure:"verbose"`
	Watch         WatchConfig `mapstructure:"watch"`
}

// SetDefaults registers built-in defaults on viper.
func SetDefaults() {
	viper.SetDefault("input_dir", "percolation")
	viper.SetDefault("pattern", ".txt")
	viper.SetDefault("format", report.FormatText)
	viper.SetDefault("workers", 4)
	viper.SetDefault("path_halving", false)
	viper.SetDefault("verify", false)
	viper.SetDefault("max_side_length", DefaultMaxSideLength)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("verbose", false)
	viper.SetDefault("watch.debounce", 100*time.Millisecond)
}

// BindEnv makes PERCOLATE_* environment variables override settings.
// Nested keys map with underscores, so watch.debounce reads
// PERCOLATE_WATCH_DEBOUNCE.
func BindEnv() {
	viper.SetEnvPrefix("PERCOLATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, then validates it.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and names.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if c.Pattern == "" {
		return ErrEmptyPattern
	}
	if !report.Known(c.Format) {
		return fmt.Errorf("config: %w: %q", report.ErrUnknownFormat, c.Format)
	}
	if c.MaxSideLength < 1 {
		return ErrInvalidMaxSide
	}
	if c.Watch.Debounce <= 0 {
		return ErrInvalidDebounce
	}
	return nil
}
