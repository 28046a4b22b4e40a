// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

// Package config loads and validates the service configuration using
// Koanf v2 with layered sources: struct defaults, an optional YAML file,
// and environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Vestra server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Weather   WeatherConfig   `koanf:"weather"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// Timeout is the read/write timeout applied to the HTTP server.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig contains BadgerDB settings.
type DatabaseConfig struct {
	// Path is the directory for the Badger value log and SST files.
	// Empty means in-memory (used by tests).
	Path string `koanf:"path"`

	// InMemory forces an in-memory database regardless of Path.
	InMemory bool `koanf:"in_memory"`
}

// SecurityConfig contains authentication and HTTP hardening settings.
type SecurityConfig struct {
	// JWTSecret signs session tokens (HS256). Minimum 32 characters.
	JWTSecret string `koanf:"jwt_secret"`

	// SessionTimeout is the JWT validity window.
	SessionTimeout time.Duration `koanf:"session_timeout"`

	// AdminUsername and AdminPasswordHash configure the single admin login.
	// The hash is a bcrypt hash; plain passwords are never stored.
	AdminUsername     string `koanf:"admin_username"`
	AdminPasswordHash string `koanf:"admin_password_hash"`

	// RateLimitReqs and RateLimitWindow bound per-IP request rates.
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig contains outfit recommendation engine settings.
// The defaults reproduce the engine's documented scoring rules; they are
// configurable so deployments can tune boost magnitudes without a rebuild.
type RecommendConfig struct {
	// BaseScore is the score every wardrobe item starts from.
	BaseScore int `koanf:"base_score"`

	// WeatherExactBoost is added when an item's weather tag equals the
	// requested weather (case-insensitive).
	WeatherExactBoost int `koanf:"weather_exact_boost"`

	// WeatherCompatBoost is added when the requested weather is listed as
	// compatible with the item's weather tag.
	WeatherCompatBoost int `koanf:"weather_compat_boost"`

	// OccasionBoost is added when the requested occasion appears in the
	// item's occasion tags.
	OccasionBoost int `koanf:"occasion_boost"`

	// StyleBoost is added when the item's style tag equals the requested style.
	StyleBoost int `koanf:"style_boost"`

	// MaxCandidates caps the number of assembled outfits per request.
	MaxCandidates int `koanf:"max_candidates"`

	// MaxAccessories caps accessories per outfit.
	MaxAccessories int `koanf:"max_accessories"`

	// Confidence weights per preference dimension. They sum to 100 so a
	// fully matching outfit under all three supplied preferences reaches
	// 100% confidence.
	WeatherConfidenceWeight  int `koanf:"weather_confidence_weight"`
	StyleConfidenceWeight    int `koanf:"style_confidence_weight"`
	OccasionConfidenceWeight int `koanf:"occasion_confidence_weight"`
}

// WeatherConfig contains the optional upstream weather lookup used to
// enrich recommendation requests that omit an explicit weather preference.
type WeatherConfig struct {
	// Enabled toggles the lookup. Disabled by default.
	Enabled bool `koanf:"enabled"`

	// URL is the lookup endpoint returning {"condition": "...", "temperature_c": n}.
	URL string `koanf:"url"`

	// Timeout bounds the lookup round trip.
	Timeout time.Duration `koanf:"timeout"`
}

// Load reads configuration with the following precedence (lowest to highest):
//
//  1. Built-in defaults
//  2. Config file (config.yaml if present, or the path in CONFIG_PATH)
//  3. Environment variables
//
// See LoadWithKoanf for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Validate checks the configuration for internally inconsistent or unusable
// values. It is called by LoadWithKoanf after all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Security.JWTSecret != "" && len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters")
	}
	if c.Security.RateLimitReqs <= 0 && !c.Security.RateLimitDisabled {
		return fmt.Errorf("security.rate_limit_reqs must be positive when rate limiting is enabled")
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	if c.Weather.Enabled && c.Weather.URL == "" {
		return fmt.Errorf("weather.url is required when weather lookup is enabled")
	}
	return nil
}

// Validate checks the recommendation engine configuration.
func (c *RecommendConfig) Validate() error {
	if c.BaseScore < 0 {
		return fmt.Errorf("base_score must be non-negative, got %d", c.BaseScore)
	}
	if c.WeatherExactBoost < 0 || c.WeatherCompatBoost < 0 || c.OccasionBoost < 0 || c.StyleBoost < 0 {
		return fmt.Errorf("score boosts must be non-negative")
	}
	if c.WeatherExactBoost < c.WeatherCompatBoost {
		return fmt.Errorf("weather_exact_boost (%d) must be >= weather_compat_boost (%d)",
			c.WeatherExactBoost, c.WeatherCompatBoost)
	}
	if c.MaxCandidates <= 0 {
		return fmt.Errorf("max_candidates must be positive, got %d", c.MaxCandidates)
	}
	if c.MaxAccessories <= 0 {
		return fmt.Errorf("max_accessories must be positive, got %d", c.MaxAccessories)
	}
	weightSum := c.WeatherConfidenceWeight + c.StyleConfidenceWeight + c.OccasionConfidenceWeight
	if weightSum <= 0 || weightSum > 100 {
		return fmt.Errorf("confidence weights must sum to (0, 100], got %d", weightSum)
	}
	return nil
}
