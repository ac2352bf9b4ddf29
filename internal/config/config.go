//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for retailgen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/maxshowarth/retailgen/internal/retail"
	"github.com/maxshowarth/retailgen/internal/sink"
)

// Config holds all configuration for retailgen.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`

	// Output holds output sink configuration.
	Output OutputConfig `mapstructure:"output"`
}

// GenerateConfig controls what dataset gets generated.
type GenerateConfig struct {
	// Scale is the dataset size tier (small, medium, large).
	Scale string `mapstructure:"scale"`

	// Days is the length of the simulation window in calendar days.
	Days int `mapstructure:"days"`

	// StartDate is the first day of the window in YYYY-MM-DD form.
	// Empty means "today minus days-1" so the window ends today.
	StartDate string `mapstructure:"start_date"`

	// Seed is the master random seed. Equal seeds produce equal datasets.
	Seed int64 `mapstructure:"seed"`
}

// OutputConfig controls where the dataset is written.
type OutputConfig struct {
	// Format selects the output sink (csv, postgres).
	Format string `mapstructure:"format"`

	// Dir is the output directory for file-based sinks.
	Dir string `mapstructure:"dir"`

	// Overwrite allows replacing existing output files.
	Overwrite bool `mapstructure:"overwrite"`

	// Connection is the PostgreSQL connection string for the postgres sink.
	Connection string `mapstructure:"connection"`

	// DropExisting drops and recreates tables before loading.
	DropExisting bool `mapstructure:"drop_existing"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Scale: "small",
			Days:  14,
			Seed:  42,
		},
		Output: OutputConfig{
			Format:    "csv",
			Dir:       "sample_data",
			Overwrite: true,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./retailgen.yaml
// 3. ~/.config/retailgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("retailgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "retailgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	if _, err := retail.ScaleByName(c.Generate.Scale); err != nil {
		return err
	}
	if c.Generate.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	if c.Generate.StartDate != "" {
		if _, err := time.Parse("2006-01-02", c.Generate.StartDate); err != nil {
			return fmt.Errorf("invalid start_date %q (want YYYY-MM-DD): %w", c.Generate.StartDate, err)
		}
	}
	return c.validateOutput()
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "csv":
		if c.Output.Dir == "" {
			return fmt.Errorf("output dir is required for csv format")
		}
	case "postgres":
		if c.Output.Connection == "" {
			return fmt.Errorf("connection string is required for postgres format")
		}
	default:
		return fmt.Errorf("unknown output format %q (valid: %v)", c.Output.Format, sink.List())
	}
	return nil
}

// Window builds the simulation window from the generate settings. When no
// start date is configured the window ends today (UTC).
func (c *Config) Window() (retail.Window, error) {
	var start time.Time
	if c.Generate.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", c.Generate.StartDate)
		if err != nil {
			return retail.Window{}, fmt.Errorf("invalid start_date: %w", err)
		}
		start = parsed
	} else {
		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		start = today.AddDate(0, 0, -(c.Generate.Days - 1))
	}
	return retail.NewWindow(start, c.Generate.Days), nil
}
