// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults are applied, so only explicitly bad values fail here.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.VaultDir == "" || cfg.App.TempDir == "" || cfg.App.ViewCleanupDelay < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Search.Limit < 1 || cfg.Search.Debounce < 0 || cfg.Search.CacheTTL < 0 {
		return ErrInvalidSearchConfigs
	}

	// the catalog must outlive the process
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
