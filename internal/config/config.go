// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// filter-sync CLI. It is populated by merging values from command-line
// flags, environment variables, an optional JSON file, and built-in
// defaults — in that priority order (first non-zero value wins).
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Controller holds the connection and session settings for the UniFi
	// controller's content-filtering API.
	Controller Controller `envPrefix:"UNIFI_"`

	// App holds local application settings.
	App App

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from flags and environment variables.
	// Populated via the FILTERSYNC_CONFIG environment variable or the
	// --config flag.
	JSONFilePath string `env:"FILTERSYNC_CONFIG"`
}

// Controller holds everything needed to open an authenticated session
// against one controller site.
type Controller struct {
	// Host is the controller base URL (e.g. "https://unifi.local").
	// Env: UNIFI_HOST
	Host string `env:"HOST"`

	// Username is the controller account used for login.
	// Env: UNIFI_USERNAME
	Username string `env:"USERNAME"`

	// Password is the controller account password.
	// Env: UNIFI_PASSWORD
	Password string `env:"PASSWORD"`

	// Site is the controller site the filter rules are scoped under.
	// Env: UNIFI_SITE
	Site string `env:"SITE"`

	// RequestTimeout bounds every outbound HTTP request (e.g. "15s").
	// Env: UNIFI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// VerifyTLS enables certificate verification for controller calls.
	// Controllers ship with self-signed certificates, so verification is
	// off unless explicitly requested.
	// Env: UNIFI_VERIFY_TLS
	VerifyTLS bool `env:"VERIFY_TLS"`
}

// App holds local, non-network settings.
type App struct {
	// FilterFile is the default domain-list file used by sync when no
	// file argument is given.
	// Env: FILTER_FILE
	FilterFile string `env:"FILTER_FILE"`

	// Verbose lowers the log level to debug.
	// Env: FILTERSYNC_VERBOSE
	Verbose bool `env:"FILTERSYNC_VERBOSE"`
}

// GetConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (first non-zero
// value wins):
//  1. overrides (command-line flags, may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Controller: Controller{
			Host:           "https://unifi.local",
			Username:       "admin",
			Password:       "password",
			Site:           "default",
			RequestTimeout: 15 * time.Second,
		},
	}
}
