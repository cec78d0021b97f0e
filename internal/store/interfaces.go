package store

import (
	"context"

	"github.com/MKhiriev/go-doc-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CatalogIndex is the browsable and searchable folder/file index of the
// vault. Rows point at sealed objects by storage path.
type CatalogIndex interface {
	GetSubfolders(ctx context.Context, parentID *int64, panel models.Panel) ([]models.Folder, error)
	GetFolder(ctx context.Context, id int64) (models.Folder, error)
	CreateFolder(ctx context.Context, name string, parentID *int64, panel models.Panel) (int64, error)
	AddFile(ctx context.Context, folderID int64, displayName, storagePath string) (int64, error)
	CountFilesInFolder(ctx context.Context, folderID int64, recursive bool) (int, error)
	SearchFilesFast(ctx context.Context, query models.SearchQuery) ([]models.FileRecord, error)
	ListChildren(ctx context.Context, folderID int64) ([]models.FileRecord, error)
	DeleteFileByPath(ctx context.Context, storagePath string) error
}

// MetadataCatalog maps on-disk object names to their metadata records.
type MetadataCatalog interface {
	// Load re-reads the catalog file and returns a copy of the mapping.
	Load() (map[string]models.MetadataRecord, error)
	Get(objectName string) (models.MetadataRecord, bool)
	Put(objectName string, record models.MetadataRecord) error
	Remove(objectName string) error
	Names() []string
}

// VaultStore owns the directory that holds sealed objects.
type VaultStore interface {
	// EnsureLayout creates the hidden objects directory and one
	// subdirectory per panel.
	EnsureLayout() error
	PathFor(panel models.Panel, objectName string) (string, error)
	// Write stores a sealed blob under the panel directory and returns its
	// path.
	Write(panel models.Panel, objectName string, data []byte) (string, error)
	ReadObject(path string) ([]byte, error)
	// Delete removes the object. A missing object is not an error.
	Delete(path string) error
	Exists(path string) bool
	Size(path string) (int64, error)
	Root() string
}
