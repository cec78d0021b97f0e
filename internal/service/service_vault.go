package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

type vaultService struct {
	vault       store.VaultStore
	catalog     store.MetadataCatalog
	index       store.CatalogIndex
	invalidator CacheInvalidator

	logger *logger.Logger
}

func NewVaultService(storages *store.Storages, invalidator CacheInvalidator, logger *logger.Logger) VaultService {
	return &vaultService{
		vault:       storages.Vault,
		catalog:     storages.Catalog,
		index:       storages.Index,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Delete removes the sealed object, its metadata record and its index row.
// A blob that is already gone is not an error.
func (s *vaultService) Delete(ctx context.Context, objectPath string) error {
	log := logger.FromContext(ctx)
	objectName := filepath.Base(objectPath)

	if err := s.vault.Delete(objectPath); err != nil {
		log.Err(err).Str("func", "vaultService.Delete").Str("object", objectName).Msg("failed to delete sealed object")
		return err
	}

	if err := s.catalog.Remove(objectName); err != nil {
		log.Err(err).Str("func", "vaultService.Delete").Str("object", objectName).Msg("failed to remove metadata record")
		return err
	}

	if err := s.index.DeleteFileByPath(ctx, objectPath); err != nil {
		log.Err(err).Str("func", "vaultService.Delete").Str("object", objectName).Msg("failed to remove index row")
		return err
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}

	log.Info().Str("object", objectName).Msg("object deleted")
	return nil
}

// OriginalFilename falls back to the opaque object name when the catalog has
// no record.
func (s *vaultService) OriginalFilename(objectPath string) string {
	objectName := filepath.Base(objectPath)
	if record, ok := s.catalog.Get(objectName); ok && record.OriginalName != "" {
		return record.OriginalName
	}
	return objectName
}

func (s *vaultService) FileSize(objectPath string) int64 {
	if record, ok := s.catalog.Get(filepath.Base(objectPath)); ok {
		return record.Size
	}
	size, err := s.vault.Size(objectPath)
	if err != nil {
		return 0
	}
	return size
}

func (s *vaultService) ResolvePath(objectName string) (string, error) {
	record, ok := s.catalog.Get(objectName)
	if !ok {
		return "", fmt.Errorf("%w: %s", store.ErrRecordNotFound, objectName)
	}
	return s.vault.PathFor(record.Panel, objectName)
}

func (s *vaultService) ListFolders(ctx context.Context, panel models.Panel, parentID *int64) ([]models.Folder, error) {
	if !panel.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownPanel, panel)
	}
	return s.index.GetSubfolders(ctx, parentID, panel)
}

func (s *vaultService) ListFiles(ctx context.Context, folderID int64) ([]models.FileRecord, error) {
	return s.index.ListChildren(ctx, folderID)
}

func (s *vaultService) CountFiles(ctx context.Context, folderID int64, recursive bool) (int, error) {
	return s.index.CountFilesInFolder(ctx, folderID, recursive)
}

func (s *vaultService) CreateFolder(ctx context.Context, name string, parentID *int64, panel models.Panel) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) {
		return models.Folder{}, fmt.Errorf("%w: %q", ErrInvalidFolderName, name)
	}
	if !panel.Valid() {
		return models.Folder{}, fmt.Errorf("%w: %q", models.ErrUnknownPanel, panel)
	}

	id, err := s.index.CreateFolder(ctx, name, parentID, panel)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.CreateFolder").Str("name", name).Msg("failed to create folder")
		return models.Folder{}, err
	}

	return s.index.GetFolder(ctx, id)
}
