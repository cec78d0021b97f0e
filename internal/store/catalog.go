// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

// CatalogFileName is the metadata catalog file inside the vault root.
const CatalogFileName = ".metadata.json"

// jsonMetadataCatalog keeps the whole catalog in memory and rewrites the
// JSON file atomically on every mutation. The write lock serializes
// load-modify-rewrite; readers share the read lock.
type jsonMetadataCatalog struct {
	path   string
	logger *logger.Logger

	mu      sync.RWMutex
	loaded  bool
	records map[string]models.MetadataRecord
}

// NewMetadataCatalog constructs a catalog backed by <vaultDir>/.metadata.json.
// The file is read lazily on first access.
func NewMetadataCatalog(vaultDir string, log *logger.Logger) MetadataCatalog {
	return &jsonMetadataCatalog{
		path:    filepath.Join(vaultDir, CatalogFileName),
		logger:  log,
		records: make(map[string]models.MetadataRecord),
	}
}

// Load implements [MetadataCatalog]. A missing file yields an empty mapping.
// A malformed file is reported with [ErrCatalogMalformed] and the catalog
// continues empty; the next successful write replaces the damaged file.
func (c *jsonMetadataCatalog) Load() (map[string]models.MetadataRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.load()
	return maps.Clone(c.records), err
}

func (c *jsonMetadataCatalog) Get(objectName string) (models.MetadataRecord, bool) {
	c.ensureLoaded()

	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[objectName]
	return rec, ok
}

func (c *jsonMetadataCatalog) Put(objectName string, record models.MetadataRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		_ = c.load()
	}

	prev, existed := c.records[objectName]
	c.records[objectName] = record

	if err := c.persist(); err != nil {
		if existed {
			c.records[objectName] = prev
		} else {
			delete(c.records, objectName)
		}
		c.logger.Err(err).
			Str("func", "jsonMetadataCatalog.Put").
			Str("object", objectName).
			Msg("failed to persist metadata catalog")
		return fmt.Errorf("%w: %w", ErrCatalogWrite, err)
	}

	return nil
}

func (c *jsonMetadataCatalog) Remove(objectName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		_ = c.load()
	}

	prev, existed := c.records[objectName]
	if !existed {
		return nil
	}
	delete(c.records, objectName)

	if err := c.persist(); err != nil {
		c.records[objectName] = prev
		c.logger.Err(err).
			Str("func", "jsonMetadataCatalog.Remove").
			Str("object", objectName).
			Msg("failed to persist metadata catalog")
		return fmt.Errorf("%w: %w", ErrCatalogWrite, err)
	}

	return nil
}

// Names returns the object names in lexical order.
func (c *jsonMetadataCatalog) Names() []string {
	c.ensureLoaded()

	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Sorted(maps.Keys(c.records))
}

func (c *jsonMetadataCatalog) ensureLoaded() {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		_ = c.load()
	}
}

// load must be called with the write lock held.
func (c *jsonMetadataCatalog) load() error {
	c.loaded = true
	c.records = make(map[string]models.MetadataRecord)

	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		c.logger.Err(err).Str("func", "jsonMetadataCatalog.load").Str("path", c.path).Msg("failed to read metadata catalog")
		return fmt.Errorf("%w: %w", ErrCatalogMalformed, err)
	}

	var records map[string]models.MetadataRecord
	if err = json.Unmarshal(data, &records); err != nil {
		c.logger.Error().Err(err).
			Str("func", "jsonMetadataCatalog.load").
			Str("path", c.path).
			Msg("metadata catalog is malformed, continuing with an empty catalog")
		return fmt.Errorf("%w: %w", ErrCatalogMalformed, err)
	}
	if records != nil {
		c.records = records
	}

	return nil
}

// persist must be called with the write lock held.
func (c *jsonMetadataCatalog) persist() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	payload, err := json.MarshalIndent(c.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata catalog: %w", err)
	}

	if err = utils.WriteFileAtomic(c.path, payload, 0o600); err != nil {
		return err
	}

	if err = utils.HideFile(c.path); err != nil {
		c.logger.Debug().Err(err).Str("path", c.path).Msg("could not hide metadata catalog")
	}

	return nil
}
