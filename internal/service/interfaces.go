package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ImportService seals documents from the filesystem into the vault.
type ImportService interface {
	// Import runs job synchronously. Per-file problems are reported in the
	// result and never returned as an error; only an invalid job or an
	// unusable catalog index fails the call.
	Import(ctx context.Context, job models.ImportJob) (models.ImportResult, error)
}

// ViewService decrypts a sealed object to a short-lived plaintext file.
type ViewService interface {
	OpenForView(ctx context.Context, objectPath string) (models.ViewHandle, error)
}

// SearchService answers file name searches over the catalog index.
type SearchService interface {
	Search(ctx context.Context, filter models.SearchFilter) (models.SearchResult, error)
	// Schedule debounces filter and calls callback with the outcome of the
	// last filter scheduled within the quiet period.
	Schedule(filter models.SearchFilter, callback func(models.SearchResult, error))
	// Invalidate drops every cached result.
	Invalidate()
}

// VaultService groups maintenance and browsing operations over stored
// objects.
type VaultService interface {
	Delete(ctx context.Context, objectPath string) error
	OriginalFilename(objectPath string) string
	FileSize(objectPath string) int64
	ResolvePath(objectName string) (string, error)

	ListFolders(ctx context.Context, panel models.Panel, parentID *int64) ([]models.Folder, error)
	ListFiles(ctx context.Context, folderID int64) ([]models.FileRecord, error)
	CountFiles(ctx context.Context, folderID int64, recursive bool) (int, error)
	CreateFolder(ctx context.Context, name string, parentID *int64, panel models.Panel) (models.Folder, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// CleanupScheduler runs task once after delay. Tasks cannot be cancelled.
type CleanupScheduler interface {
	Schedule(delay time.Duration, task func())
}

// CacheInvalidator is notified whenever the set of stored objects changes.
type CacheInvalidator interface {
	Invalidate()
}

// IDGenerator produces unique object identifiers.
type IDGenerator interface {
	Generate() string
}
