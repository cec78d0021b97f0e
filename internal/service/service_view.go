package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

type viewService struct {
	cipher    crypto.Cipher
	vault     store.VaultStore
	catalog   store.MetadataCatalog
	scheduler CleanupScheduler

	tempDir string
	delay   time.Duration

	logger *logger.Logger
	now    func() time.Time
}

func NewViewService(
	cipher crypto.Cipher,
	storages *store.Storages,
	scheduler CleanupScheduler,
	cfg config.App,
	logger *logger.Logger,
) ViewService {
	return &viewService{
		cipher:    cipher,
		vault:     storages.Vault,
		catalog:   storages.Catalog,
		scheduler: scheduler,
		tempDir:   cfg.TempDir,
		delay:     cfg.ViewCleanupDelay,
		logger:    logger,
		now:       time.Now,
	}
}

// OpenForView decrypts the object at objectPath into the temp directory under
// its original name and schedules the plaintext for removal. Every call
// schedules its own removal; an earlier schedule deletes the file even if a
// later call re-created it.
func (s *viewService) OpenForView(ctx context.Context, objectPath string) (models.ViewHandle, error) {
	log := logger.FromContext(ctx)
	objectName := filepath.Base(objectPath)

	record, ok := s.catalog.Get(objectName)
	if !ok {
		return models.ViewHandle{}, fmt.Errorf("%w: %s", store.ErrRecordNotFound, objectName)
	}

	sealed, err := s.vault.ReadObject(objectPath)
	if err != nil {
		return models.ViewHandle{}, err
	}

	plaintext, err := s.cipher.Unseal(sealed)
	if err != nil {
		log.Err(err).Str("func", "viewService.OpenForView").Str("object", objectName).Msg("failed to unseal object")
		return models.ViewHandle{}, err
	}

	if err = os.MkdirAll(s.tempDir, 0o700); err != nil {
		return models.ViewHandle{}, fmt.Errorf("create temp dir: %w", err)
	}

	viewName := filepath.Base(record.OriginalName)
	if record.OriginalName == "" || viewName == "." || viewName == string(filepath.Separator) {
		viewName = objectName
	}
	viewPath := filepath.Join(s.tempDir, viewName)
	if err = os.WriteFile(viewPath, plaintext, 0o600); err != nil {
		return models.ViewHandle{}, fmt.Errorf("write view file: %w", err)
	}

	s.scheduler.Schedule(s.delay, func() {
		s.removeViewFile(viewPath)
	})

	log.Debug().
		Str("object", objectName).
		Str("path", viewPath).
		Dur("delay", s.delay).
		Msg("object decrypted for viewing")

	return models.ViewHandle{
		Path:         viewPath,
		OriginalName: record.OriginalName,
		ObjectName:   objectName,
		ExpiresAt:    s.now().Add(s.delay),
	}, nil
}

func (s *viewService) removeViewFile(path string) {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Err(err).Str("func", "viewService.removeViewFile").Str("path", path).Msg("failed to remove view file")
	}
}
