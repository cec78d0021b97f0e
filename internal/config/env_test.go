// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VAULT_DIR":          "/srv/vault",
		"APP_TEMP_DIR":           "/tmp/vault-view",
		"APP_VIEW_CLEANUP_DELAY": "45s",
		"APP_LOG_DIR":            "/var/log/vault",
		"APP_VERSION":            "1.2.3",

		"SEARCH_LIMIT":     "50",
		"SEARCH_DEBOUNCE":  "150ms",
		"SEARCH_CACHE_TTL": "1m",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/srv/vault/catalog.db",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/srv/vault", cfg.App.VaultDir)
	assert.Equal(t, "/tmp/vault-view", cfg.App.TempDir)
	assert.Equal(t, 45*time.Second, cfg.App.ViewCleanupDelay)
	assert.Equal(t, "/var/log/vault", cfg.App.LogDir)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, 50, cfg.Search.Limit)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, time.Minute, cfg.Search.CacheTTL)

	assert.Equal(t, "/srv/vault/catalog.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VAULT_DIR": "vault",
		"SEARCH_LIMIT":  "10",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "vault", cfg.App.VaultDir)
	assert.Equal(t, 10, cfg.Search.Limit)
	assert.Empty(t, cfg.App.TempDir)
	assert.Zero(t, cfg.Search.Debounce)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VIEW_CLEANUP_DELAY": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidLimit(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SEARCH_LIMIT": "many",
	})

	require.Error(t, parseEnv(&StructuredConfig{}))
}

func TestParseEnv_DurationFormats(t *testing.T) {
	cases := map[string]time.Duration{
		"300ms": 300 * time.Millisecond,
		"2m":    2 * time.Minute,
		"1h30m": 90 * time.Minute,
	}

	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			setEnvVars(t, map[string]string{"SEARCH_CACHE_TTL": raw})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, want, cfg.Search.CacheTTL)
		})
	}
}

var configEnvKeys = []string{
	"CONFIG",

	"APP_VAULT_DIR",
	"APP_TEMP_DIR",
	"APP_VIEW_CLEANUP_DELAY",
	"APP_LOG_DIR",
	"APP_VERSION",

	"SEARCH_LIMIT",
	"SEARCH_DEBOUNCE",
	"SEARCH_CACHE_TTL",

	"STORAGE_DB_DATABASE_URI",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
