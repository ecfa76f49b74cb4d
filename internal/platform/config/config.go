// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Cookie Deployment Policy

// CookiePolicy selects the session cookie attributes for the deployment
// topology. It replaces the per-variant hardcoded SameSite literals the
// service historically shipped with.
type CookiePolicy string

const (
	// CookiePolicySameOrigin serves the SPA and API from one origin.
	// SameSite=Lax keeps the cookie usable on plain-HTTP development hosts.
	CookiePolicySameOrigin CookiePolicy = "same-origin"

	// CookiePolicyCrossOrigin serves the SPA from a different origin.
	// SameSite=None requires Secure per browser rules.
	CookiePolicyCrossOrigin CookiePolicy = "cross-origin"
)

// SameSite returns the http.SameSite mode for the policy.
func (p CookiePolicy) SameSite() http.SameSite {
	if p == CookiePolicyCrossOrigin {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// Secure reports whether the session cookie must carry the Secure attribute.
func (p CookiePolicy) Secure() bool {
	return p == CookiePolicyCrossOrigin
}

// # Configuration Schema

// insecureDevSecret is the documented fallback signing secret.
// It is only ever accepted when ENVIRONMENT=development.
const insecureDevSecret = "super-secret-kodbank-key-change-in-production"

// Config holds all runtime configuration for the Kodbank API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// JWTSecret signs session tokens. Optional in the schema because
	// development mode falls back to a documented insecure default;
	// Load rejects an empty value in every other environment.
	JWTSecret string `env:"JWT_SECRET"`

	// CookiePolicy resolves the session cookie Secure/SameSite attributes
	// once at startup.
	CookiePolicy CookiePolicy `env:"COOKIE_POLICY" envDefault:"same-origin"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
//
// # Trust Anchor
//
// The signing secret is the process-wide trust anchor for every session
// token. A missing secret is a hard startup failure outside development;
// in development the insecure fallback is substituted so the service
// remains bootable, and callers are expected to log a warning via
// [Config.UsesInsecureSecret].
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("config: JWT_SECRET is required when ENVIRONMENT=%s", cfg.Environment)
		}
		cfg.JWTSecret = insecureDevSecret
	}

	switch cfg.CookiePolicy {
	case CookiePolicySameOrigin, CookiePolicyCrossOrigin:
	default:
		return nil, fmt.Errorf("config: COOKIE_POLICY must be %q or %q, got %q",
			CookiePolicySameOrigin, CookiePolicyCrossOrigin, cfg.CookiePolicy)
	}

	return cfg, nil
}

// UsesInsecureSecret reports whether the process is running on the
// development fallback signing secret.
func (c *Config) UsesInsecureSecret() bool {
	return c.JWTSecret == insecureDevSecret
}

// ExtraAllowedOrigins returns the additional CORS origins configured via
// EXTRA_ORIGINS (comma-separated), beyond the first-party domain.
func (c *Config) ExtraAllowedOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}
	parts := strings.Split(c.ExtraOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
