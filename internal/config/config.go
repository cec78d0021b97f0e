// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-doc-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds vault location and view session settings.
	App App `envPrefix:"APP_"`

	// Search holds tuning knobs of the search service.
	Search Search `envPrefix:"SEARCH_"`

	// Storage holds configuration of the catalog index database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the local
	// HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds vault-level configuration values.
type App struct {
	// VaultDir is the root directory of the vault. It holds the key file,
	// the metadata catalog, the encrypted objects and the catalog database.
	// Env: APP_VAULT_DIR
	VaultDir string `env:"VAULT_DIR"`

	// TempDir receives decrypted plaintext while a document is being
	// viewed. Defaults to <VaultDir>/.temp.
	// Env: APP_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`

	// ViewCleanupDelay is how long a decrypted view file lives before it is
	// removed (e.g. "30s").
	// Env: APP_VIEW_CLEANUP_DELAY
	ViewCleanupDelay time.Duration `env:"VIEW_CLEANUP_DELAY"`

	// LogDir is where the terminal client writes its log file. Defaults to
	// the vault directory.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Search holds search service settings.
type Search struct {
	// Limit caps the number of records a single query returns. Result sets
	// that reach the limit are never cached.
	// Env: SEARCH_LIMIT
	Limit int `env:"LIMIT"`

	// Debounce is the quiet period before a scheduled search is dispatched.
	// Env: SEARCH_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`

	// CacheTTL bounds how long a cached result may be served.
	// Env: SEARCH_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Storage groups the configuration for the catalog index backend.
type Storage struct {
	// DB holds the catalog database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite catalog database.
type DB struct {
	// DSN is the SQLite file path, optionally followed by driver parameters
	// (e.g. "uploads/catalog.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args (usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source receive their defaults, see
// [StructuredConfig.applyDefaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
