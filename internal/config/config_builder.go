package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// Defaults applied after all sources are merged.
const (
	DefaultVaultDir         = "uploads"
	DefaultViewCleanupDelay = 30 * time.Second
	DefaultSearchLimit      = 200
	DefaultSearchDebounce   = 300 * time.Millisecond
	DefaultSearchCacheTTL   = 5 * time.Minute
	DefaultRequestTimeout   = 30 * time.Second

	tempDirName     = ".temp"
	catalogFileName = "catalog.db"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.applyDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// applyDefaults fills every field that no source has set. Paths derived
// from the vault directory are resolved after the vault directory itself.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.VaultDir == "" {
		cfg.App.VaultDir = DefaultVaultDir
	}
	if cfg.App.TempDir == "" {
		cfg.App.TempDir = filepath.Join(cfg.App.VaultDir, tempDirName)
	}
	if cfg.App.ViewCleanupDelay == 0 {
		cfg.App.ViewCleanupDelay = DefaultViewCleanupDelay
	}
	if cfg.App.LogDir == "" {
		cfg.App.LogDir = cfg.App.VaultDir
	}

	if cfg.Search.Limit == 0 {
		cfg.Search.Limit = DefaultSearchLimit
	}
	if cfg.Search.Debounce == 0 {
		cfg.Search.Debounce = DefaultSearchDebounce
	}
	if cfg.Search.CacheTTL == 0 {
		cfg.Search.CacheTTL = DefaultSearchCacheTTL
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.App.VaultDir, catalogFileName)
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}
