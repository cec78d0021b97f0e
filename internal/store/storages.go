package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// Storages groups all vault storage components into a single value that can
// be passed around the service layer.
type Storages struct {
	// Index is the SQLite-backed folder/file index.
	Index CatalogIndex

	// Catalog maps sealed object names to their metadata records.
	Catalog MetadataCatalog

	// Vault owns the sealed object files.
	Vault VaultStore

	// CatalogWarning is set when the metadata catalog file could not be
	// read at startup and the vault continues with an empty catalog.
	CatalogWarning error

	db *DB
}

// NewStorages initialises the storage layer of the vault rooted at
// cfg.App.VaultDir. It performs the following steps:
//  1. Creates the vault layout (hidden objects dir and panel subdirs).
//  2. Opens the SQLite catalog database at cfg.Storage.DB.DSN, creating the
//     file if it does not yet exist.
//  3. Runs pending schema migrations via [DB.Migrate].
//  4. Loads the metadata catalog. A damaged catalog does not fail startup,
//     it is reported through [Storages.CatalogWarning].
//
// Returns an error if any step fails.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("vault", cfg.App.VaultDir).Msg("creating new storages...")

	vault := NewVaultStore(cfg.App.VaultDir, logger)
	if err := vault.EnsureLayout(); err != nil {
		return nil, fmt.Errorf("vault layout error: %w", err)
	}

	db, err := NewConnectSQLite(ctx, cfg.Storage.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	catalog, warning := openCatalog(cfg.App.VaultDir, logger)

	return &Storages{
		Index:          NewCatalogIndexRepository(db, logger),
		Catalog:        catalog,
		Vault:          vault,
		CatalogWarning: warning,
		db:             db,
	}, nil
}

// openCatalog reads the metadata catalog once so a damaged file is
// reported before the first write replaces it.
func openCatalog(vaultDir string, logger *logger.Logger) (MetadataCatalog, error) {
	catalog := NewMetadataCatalog(vaultDir, logger)

	if _, err := catalog.Load(); err != nil {
		logger.Warn().Err(err).Str("func", "openCatalog").Msg("starting with an empty metadata catalog")
		return catalog, err
	}

	return catalog, nil
}

// Close releases the catalog database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
