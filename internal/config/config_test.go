// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var envVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "SITE_NAME",
	"WP_API_BASE", "WP_TIMEOUT", "WP_CATEGORY_TAXONOMY", "WP_WORK_TYPE",
	"FEATURED_CATEGORIES",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD", "SESSION_TTL",
	"INTRO_DURATION",
	"RESEND_API_KEY", "CONTACT_FROM", "CONTACT_TO",
	"UNLOCK_RATE_LIMIT", "CONTACT_RATE_LIMIT",
}

// clearEnv sets every variable Load reads to "", which envOrDefault
// treats the same as unset. t.Setenv restores the originals.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("SiteName", cfg.SiteName, "NANAME LAB")
	check("WPBaseURL", cfg.WPBaseURL, "https://naname-lab.net/wp-json/wp/v2")
	check("WPTaxonomy", cfg.WPTaxonomy, "achievement_cat")
	check("WPWorkType", cfg.WPWorkType, "achievement")
	check("ValkeyHost", cfg.ValkeyHost, "localhost")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("ValkeyPassword", cfg.ValkeyPassword, "")
	check("ContactFrom", cfg.ContactFrom, "onboarding@resend.dev")

	if cfg.WPTimeout != 10*time.Second {
		t.Errorf("WPTimeout = %v, want 10s", cfg.WPTimeout)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
	}
	if cfg.IntroDuration != 2800*time.Millisecond {
		t.Errorf("IntroDuration = %v, want 2.8s", cfg.IntroDuration)
	}
	if cfg.UnlockRateLimit != 10 || cfg.ContactRateLimit != 5 {
		t.Errorf("rate limits = %d/%d, want 10/5", cfg.UnlockRateLimit, cfg.ContactRateLimit)
	}
	want := []string{"wordpress", "woocommerce", "website-building", "design"}
	if diff := cmp.Diff(want, cfg.FeaturedCategories); diff != "" {
		t.Errorf("FeaturedCategories mismatch (-want +got):\n%s", diff)
	}
	if cfg.ContactTo != nil {
		t.Errorf("ContactTo = %v, want nil", cfg.ContactTo)
	}
	if cfg.ContactEnabled() {
		t.Error("ContactEnabled() = true without API key")
	}
	if !cfg.IsDev() || cfg.IsProduction() {
		t.Error("default env should be development")
	}
}

// TestLoad_EnvOverrides verifies that every environment variable properly
// overrides the default value.
func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	overrides := map[string]string{
		"APP_HOST":             "127.0.0.1",
		"APP_PORT":             "9090",
		"APP_ENV":              "testing",
		"SITE_NAME":            "Studio",
		"WP_API_BASE":          "http://wp.local/wp-json/wp/v2/",
		"WP_TIMEOUT":           "3",
		"WP_CATEGORY_TAXONOMY": "project_cat",
		"WP_WORK_TYPE":         "project",
		"FEATURED_CATEGORIES":  " design , ,web ",
		"VALKEY_HOST":          "cache.example.com",
		"VALKEY_PORT":          "6380",
		"VALKEY_PASSWORD":      "cachepass",
		"SESSION_TTL":          "2h",
		"INTRO_DURATION":       "1500ms",
		"RESEND_API_KEY":       "re_test",
		"CONTACT_FROM":         "site@example.com",
		"CONTACT_TO":           "a@example.com,b@example.com",
		"UNLOCK_RATE_LIMIT":    "3",
		"CONTACT_RATE_LIMIT":   "2",
	}
	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "127.0.0.1")
	check("Port", cfg.Port, "9090")
	check("Env", cfg.Env, "testing")
	check("SiteName", cfg.SiteName, "Studio")
	check("WPBaseURL", cfg.WPBaseURL, "http://wp.local/wp-json/wp/v2")
	check("WPTaxonomy", cfg.WPTaxonomy, "project_cat")
	check("WPWorkType", cfg.WPWorkType, "project")
	check("ValkeyHost", cfg.ValkeyHost, "cache.example.com")
	check("ValkeyPort", cfg.ValkeyPort, "6380")
	check("ValkeyPassword", cfg.ValkeyPassword, "cachepass")
	check("ResendAPIKey", cfg.ResendAPIKey, "re_test")
	check("ContactFrom", cfg.ContactFrom, "site@example.com")

	if cfg.WPTimeout != 3*time.Second {
		t.Errorf("WPTimeout = %v, want 3s", cfg.WPTimeout)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL = %v, want 2h", cfg.SessionTTL)
	}
	if cfg.IntroDuration != 1500*time.Millisecond {
		t.Errorf("IntroDuration = %v, want 1.5s", cfg.IntroDuration)
	}
	if cfg.UnlockRateLimit != 3 || cfg.ContactRateLimit != 2 {
		t.Errorf("rate limits = %d/%d, want 3/2", cfg.UnlockRateLimit, cfg.ContactRateLimit)
	}
	if diff := cmp.Diff([]string{"design", "web"}, cfg.FeaturedCategories); diff != "" {
		t.Errorf("FeaturedCategories mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a@example.com", "b@example.com"}, cfg.ContactTo); diff != "" {
		t.Errorf("ContactTo mismatch (-want +got):\n%s", diff)
	}
	if !cfg.ContactEnabled() {
		t.Error("ContactEnabled() = false with key and recipients")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"WP_TIMEOUT", "soon", "WP_TIMEOUT"},
		{"WP_TIMEOUT", "-1", "WP_TIMEOUT"},
		{"SESSION_TTL", "forever", "SESSION_TTL"},
		{"INTRO_DURATION", "-3s", "INTRO_DURATION"},
		{"UNLOCK_RATE_LIMIT", "0", "UNLOCK_RATE_LIMIT"},
		{"CONTACT_RATE_LIMIT", "many", "CONTACT_RATE_LIMIT"},
		{"WP_API_BASE", "naname-lab.net/wp-json", "WP_API_BASE"},
		{"WP_API_BASE", "ftp://naname-lab.net", "WP_API_BASE"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %s", err, tt.wantErr)
			}
		})
	}
}

// TestLoad_Production verifies the production-only checks.
func TestLoad_Production(t *testing.T) {
	t.Run("rejects plain http backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("WP_API_BASE", "http://naname-lab.net/wp-json/wp/v2")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "https") {
			t.Errorf("expected https error, got %v", err)
		}
	})

	t.Run("rejects recipients without key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("CONTACT_TO", "owner@example.com")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "RESEND_API_KEY") {
			t.Errorf("expected RESEND_API_KEY error, got %v", err)
		}
	})

	t.Run("accepts complete config", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("CONTACT_TO", "owner@example.com")
		t.Setenv("RESEND_API_KEY", "re_live")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load(): %v", err)
		}
		if !cfg.IsProduction() {
			t.Error("IsProduction() = false")
		}
	})
}

// TestLoad_DotEnv verifies that a .env file fills unset variables without
// overriding the environment.
func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	for _, key := range []string{"SITE_NAME", "APP_PORT"} {
		os.Unsetenv(key)
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SITE_NAME=From Dotenv\nAPP_PORT=7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("APP_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.SiteName != "From Dotenv" {
		t.Errorf("SiteName = %q, want value from .env", cfg.SiteName)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want environment to win over .env", cfg.Port)
	}
	t.Cleanup(func() { os.Unsetenv("SITE_NAME") })
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "127.0.0.1", Port: "8080"}
	if got := cfg.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8080")
	}
}
