package service

import (
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

type Services struct {
	ImportService  ImportService
	ViewService    ViewService
	SearchService  SearchService
	VaultService   VaultService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. The search service doubles
// as the cache invalidator of import and delete.
func NewServices(
	storages *store.Storages,
	cipher crypto.Cipher,
	scheduler CleanupScheduler,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	search := NewSearchService(storages.Index, cfg.Search, logger.ForComponent("search"))

	return &Services{
		ImportService:  NewImportService(cipher, storages, utils.NewUUIDGenerator(), search, logger.ForComponent("import")),
		ViewService:    NewViewService(cipher, storages, scheduler, cfg.App, logger.ForComponent("view")),
		SearchService:  search,
		VaultService:   NewVaultService(storages, search, logger.ForComponent("vault")),
		AppInfoService: appInfo,
	}, nil
}
