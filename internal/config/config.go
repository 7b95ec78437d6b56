// Package config provides configuration management for the journal application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"fxjournal/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Journal JournalConfig `mapstructure:"journal"`
	UI      UIConfig      `mapstructure:"ui"`
}

// JournalConfig holds journal and analytics configuration.
type JournalConfig struct {
	DefaultRange    string  `mapstructure:"default_range"`    // "all" or day count
	TopPairsLimit   int     `mapstructure:"top_pairs_limit"`  // dashboard shortlist size
	StartingBalance float64 `mapstructure:"starting_balance"` // account base for the balance stat
	ChartDays       int     `mapstructure:"chart_days"`       // chart span when range is "all"
	SeedSampleData  bool    `mapstructure:"seed_sample_data"` // load the bundled sample trades
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
	TimeFormat   string `mapstructure:"time_format"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/fxjournal"
	}
	return filepath.Join(home, ".config", "fxjournal")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("writing config template: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("journal.default_range", "30")
	v.SetDefault("journal.top_pairs_limit", 4)
	v.SetDefault("journal.starting_balance", 20000.0)
	v.SetDefault("journal.chart_days", 30)
	v.SetDefault("journal.seed_sample_data", true)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.date_format", "02-Jan-2006")
	v.SetDefault("ui.time_format", "15:04")
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FXJOURNAL_RANGE"); v != "" {
		cfg.Journal.DefaultRange = v
	}
	if v := os.Getenv("FXJOURNAL_NO_COLOR"); v != "" {
		cfg.UI.ColorEnabled = false
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Journal.TopPairsLimit < 0 {
		return errors.Wrap(errors.ErrConfigInvalid, "top_pairs_limit must be non-negative")
	}
	if c.Journal.StartingBalance < 0 {
		return errors.Wrap(errors.ErrConfigInvalid, "starting_balance must be non-negative")
	}
	if c.Journal.ChartDays < 0 {
		return errors.Wrap(errors.ErrConfigInvalid, "chart_days must be non-negative")
	}
	if c.Journal.DefaultRange != "all" {
		var days int
		if _, err := fmt.Sscanf(c.Journal.DefaultRange, "%d", &days); err != nil || days < 0 {
			return errors.Wrap(errors.ErrConfigInvalid, "default_range must be \"all\" or a non-negative day count")
		}
	}
	return nil
}
