// Package config loads CLI settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every setting of the adaptive-mapper CLI.
// Environment variables always override YAML values.
type Config struct {
	Log LogConfig `yaml:"log"`

	// DefaultType is the item type used when -type is omitted.
	DefaultType string `yaml:"default_type" env:"ADAPTIVE_MAPPER_DEFAULT_TYPE" env-default:"account"`

	// Indent is the width used when printing XML payloads.
	Indent int `yaml:"indent" env:"ADAPTIVE_MAPPER_INDENT" env-default:"2"`

	// MessagesByType files write response messages under their type
	// instead of a single bucket.
	MessagesByType bool `yaml:"messages_by_type" env:"ADAPTIVE_MAPPER_MESSAGES_BY_TYPE" env-default:"false"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level" env:"ADAPTIVE_MAPPER_LOG_LEVEL" env-default:"warn"`
	Format string `yaml:"format" env:"ADAPTIVE_MAPPER_LOG_FORMAT" env-default:"console"`
}

// Load reads path when it is set and exists, then applies environment
// overrides and defaults. A missing file at an explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}

		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.Indent < 0 {
		errs = append(errs, fmt.Errorf("indent must not be negative, got %d", c.Indent))
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be console or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
