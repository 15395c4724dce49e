// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package config loads and validates the application configuration.
//
// Configuration is layered via Koanf v2, highest priority last:
//
//  1. Built-in defaults (structs provider)
//  2. Config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables (REELIST_ prefix, e.g. REELIST_SERVER_PORT)
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	Dataset DatasetConfig `koanf:"dataset"`
	Search  SearchConfig  `koanf:"search"`
	API     APIConfig     `koanf:"api"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DatasetConfig controls where the initial table comes from. When Path is
// empty the starter dataset is fetched from DefaultURL, mirroring the
// reference application.
type DatasetConfig struct {
	Path         string        `koanf:"path"`
	DefaultURL   string        `koanf:"default_url"`
	FetchTimeout time.Duration `koanf:"fetch_timeout"`
}

// SearchConfig tunes the fuzzy title matcher.
type SearchConfig struct {
	// Limit is the maximum number of ranked matches returned.
	Limit int `koanf:"limit"`

	// MinScore is the similarity cutoff (0-100).
	MinScore int `koanf:"min_score"`
}

// APIConfig controls HTTP API behavior.
type APIConfig struct {
	RateLimitRequests  int           `koanf:"rate_limit_requests"`
	RateLimitWindow    time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled  bool          `koanf:"rate_limit_disabled"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`

	// MaxImportBytes caps uploaded dataset size.
	MaxImportBytes int64 `koanf:"max_import_bytes"`

	// TopRatedCount is the N used for the stats top-rated listing.
	TopRatedCount int `koanf:"top_rated_count"`
}

// defaultConfig returns the built-in defaults, applied before file and
// environment overrides.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            7209,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Dataset: DatasetConfig{
			Path:         "",
			DefaultURL:   "https://raw.githubusercontent.com/VWithun/1001_Movies_To_Watch_Moive_Ratings_And_Movie_Picker/main/my_movie_ratings.csv",
			FetchTimeout: 30 * time.Second,
		},
		Search: SearchConfig{
			Limit:    8,
			MinScore: 60,
		},
		API: APIConfig{
			RateLimitRequests:  100,
			RateLimitWindow:    time.Minute,
			CORSAllowedOrigins: []string{},
			MaxImportBytes:     10 << 20, // 10MB
			TopRatedCount:      10,
		},
	}
}

// Validate checks the configuration for values that would misbehave at
// runtime. It returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format %q must be json or console", c.Logging.Format)
	}
	if c.Dataset.Path == "" && c.Dataset.DefaultURL == "" {
		return fmt.Errorf("dataset.path and dataset.default_url are both empty")
	}
	if c.Search.Limit < 1 || c.Search.Limit > 100 {
		return fmt.Errorf("search.limit %d out of range 1-100", c.Search.Limit)
	}
	if c.Search.MinScore < 1 || c.Search.MinScore > 100 {
		return fmt.Errorf("search.min_score %d out of range 1-100", c.Search.MinScore)
	}
	if c.API.RateLimitRequests < 1 {
		return fmt.Errorf("api.rate_limit_requests must be positive")
	}
	if c.API.MaxImportBytes < 1 {
		return fmt.Errorf("api.max_import_bytes must be positive")
	}
	return nil
}
