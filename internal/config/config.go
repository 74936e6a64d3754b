// SPDX-License-Identifier: MIT

// Package config loads gridpath CLI settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config aggregates CLI configuration values.
type Config struct {
	Logging       LoggingConfig
	DefaultWeight int
	// OverrideWeights is set when GRIDPATH_DEFAULT_WEIGHT is given; every open
	// cell then gets DefaultWeight instead of its map value.
	OverrideWeights bool
	LandThreshold   int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

const (
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
	defaultNodeWeight    = 1
	defaultLandThreshold = 1
)

// Load reads configuration from environment variables, applying defaults.
//
//	GRIDPATH_LOG_LEVEL        debug|info|warn|error   (warn)
//	GRIDPATH_LOG_FORMAT       text|json               (text)
//	GRIDPATH_DEFAULT_WEIGHT   integer ≥ 0             (1, map values used when unset)
//	GRIDPATH_LAND_THRESHOLD   integer                 (1)
func Load() (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  valueOrDefault("GRIDPATH_LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("GRIDPATH_LOG_FORMAT", defaultLoggingFormat),
		},
	}

	w, err := parseInt("GRIDPATH_DEFAULT_WEIGHT", defaultNodeWeight)
	if err != nil {
		return Config{}, err
	}
	if w < 0 {
		return Config{}, fmt.Errorf("GRIDPATH_DEFAULT_WEIGHT %d must be non-negative", w)
	}
	cfg.DefaultWeight = w
	cfg.OverrideWeights = os.Getenv("GRIDPATH_DEFAULT_WEIGHT") != ""

	if cfg.LandThreshold, err = parseInt("GRIDPATH_LAND_THRESHOLD", defaultLandThreshold); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}
