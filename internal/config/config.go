// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables and an optional .env file. It provides a centralized Config
// struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	SiteName string

	// WordPress REST API
	WPBaseURL  string
	WPTimeout  time.Duration
	WPTaxonomy string
	WPWorkType string

	// FeaturedCategories are the category slugs shown on the home page,
	// in display order.
	FeaturedCategories []string

	// Valkey (visitor sessions)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	SessionTTL     time.Duration

	// IntroDuration is how long the opening animation plays.
	IntroDuration time.Duration

	// Contact relay (Resend)
	ResendAPIKey string
	ContactFrom  string
	ContactTo    []string

	// Requests per minute per client IP.
	UnlockRateLimit  int
	ContactRateLimit int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Variables from a .env file in the
// working directory are loaded first without overriding the environment.
// Returns an error if a value cannot be parsed or critical values are
// invalid in production mode.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "8080"),
		Env:      envOrDefault("APP_ENV", "development"),
		SiteName: envOrDefault("SITE_NAME", "NANAME LAB"),

		WPBaseURL:  strings.TrimRight(envOrDefault("WP_API_BASE", "https://naname-lab.net/wp-json/wp/v2"), "/"),
		WPTaxonomy: envOrDefault("WP_CATEGORY_TAXONOMY", "achievement_cat"),
		WPWorkType: envOrDefault("WP_WORK_TYPE", "achievement"),

		FeaturedCategories: splitList(envOrDefault("FEATURED_CATEGORIES", "wordpress,woocommerce,website-building,design")),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		ContactFrom:  envOrDefault("CONTACT_FROM", "onboarding@resend.dev"),
		ContactTo:    splitList(os.Getenv("CONTACT_TO")),
	}

	var err error
	if cfg.WPTimeout, err = envSeconds("WP_TIMEOUT", 10); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = envDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.IntroDuration, err = envDuration("INTRO_DURATION", 2800*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.UnlockRateLimit, err = envInt("UNLOCK_RATE_LIMIT", 10); err != nil {
		return nil, err
	}
	if cfg.ContactRateLimit, err = envInt("CONTACT_RATE_LIMIT", 5); err != nil {
		return nil, err
	}

	u, err := url.Parse(cfg.WPBaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("WP_API_BASE must be an absolute http(s) URL, got %q", cfg.WPBaseURL)
	}

	if cfg.Env == "production" {
		if u.Scheme != "https" {
			return nil, fmt.Errorf("WP_API_BASE must use https in production")
		}
		if len(cfg.ContactTo) > 0 && cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY must be set when CONTACT_TO is set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ContactEnabled reports whether contact messages can be delivered.
func (c *Config) ContactEnabled() bool {
	return c.ResendAPIKey != "" && len(c.ContactTo) > 0
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

func envSeconds(key string, fallback int) (time.Duration, error) {
	n, err := envInt(key, fallback)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

// envDuration accepts Go duration syntax ("24h", "2800ms").
func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a duration like 24h or 2800ms, got %q", key, v)
	}
	return d, nil
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
