// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Propflow Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level application configuration for the
// leadboard binaries. It is distinct from the dashboard settings document
// (owned by internal/settings): this config says where the process listens
// and where the settings file lives, while the settings document holds
// what the operator edits through the dashboard.
//
// Values are merged from environment variables, command-line flags, and an
// optional JSON file, then topped up with built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the dashboard
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Dashboard holds settings for the dashboard itself, most importantly
	// the location of the settings document on disk.
	Dashboard Dashboard `envPrefix:"DASHBOARD_"`

	// GoHighLevel holds connection settings for the GoHighLevel CRM API.
	GoHighLevel GoHighLevel `envPrefix:"GHL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP surface.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Dashboard holds dashboard-level settings.
type Dashboard struct {
	// SettingsPath is the path to the JSON settings document edited
	// through the dashboard. Empty selects the default location at the
	// application root.
	// Env: DASHBOARD_SETTINGS_PATH
	SettingsPath string `env:"SETTINGS_PATH"`
}

// GoHighLevel holds connection settings for the GoHighLevel CRM REST API.
// These are the only place CRM credentials enter the application; no
// package reads the process environment on its own.
type GoHighLevel struct {
	// BaseURL is the API root, e.g. "https://rest.gohighlevel.com/v1".
	// Env: GHL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the bearer key for the CRM account.
	// Env: GHL_API_KEY
	APIKey string `env:"API_KEY"`

	// LocationID selects the CRM sub-account (location) to operate on.
	// Env: GHL_LOCATION_ID
	LocationID string `env:"LOCATION_ID"`

	// RequestTimeout bounds a single outbound API call (e.g. "15s").
	// Env: GHL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
