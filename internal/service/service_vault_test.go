package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/mock"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

func newTestVaultSvc(tv *testVault, invalidator CacheInvalidator) *vaultService {
	return NewVaultService(tv.storages, invalidator, logger.Nop()).(*vaultService)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestVaultService_Delete_RemovesBlobRecordAndRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	invalidator := mock.NewMockCacheInvalidator(ctrl)
	svc := newTestVaultSvc(tv, invalidator)
	ctx := context.Background()

	objectPath := storeObject(t, tv, models.PanelOther, "invoice.xlsx", "numbers")
	require.Equal(t, "invoice.xlsx", svc.OriginalFilename(objectPath))

	tv.index.EXPECT().DeleteFileByPath(ctx, objectPath).Return(nil)
	invalidator.EXPECT().Invalidate()

	require.NoError(t, svc.Delete(ctx, objectPath))

	assert.NoFileExists(t, objectPath)
	_, ok := tv.storages.Catalog.Get(filepath.Base(objectPath))
	assert.False(t, ok)

	// запись удалена, поэтому возвращается непрозрачное имя объекта
	assert.Equal(t, filepath.Base(objectPath), svc.OriginalFilename(objectPath))
}

func TestVaultService_Delete_MissingBlobIsFine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	svc := newTestVaultSvc(tv, nil)
	ctx := context.Background()

	objectPath := storeObject(t, tv, models.PanelOther, "gone.pdf", "x")
	require.NoError(t, os.Remove(objectPath))

	tv.index.EXPECT().DeleteFileByPath(ctx, objectPath).Return(nil)

	require.NoError(t, svc.Delete(ctx, objectPath))
	assert.Empty(t, tv.storages.Catalog.Names())
}

func TestVaultService_Delete_IndexError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	invalidator := mock.NewMockCacheInvalidator(ctrl)
	svc := newTestVaultSvc(tv, invalidator)
	ctx := context.Background()
	boom := errors.New("database is locked")

	objectPath := storeObject(t, tv, models.PanelOther, "a.pdf", "x")
	tv.index.EXPECT().DeleteFileByPath(ctx, objectPath).Return(boom)

	err := svc.Delete(ctx, objectPath)
	require.ErrorIs(t, err, boom)
}

// ── lookups ──────────────────────────────────────────────────────────────────

func TestVaultService_FileSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	svc := newTestVaultSvc(tv, nil)

	objectPath := storeObject(t, tv, models.PanelOther, "a.pdf", "12345")
	assert.Equal(t, int64(5), svc.FileSize(objectPath))

	// без записи в каталоге берётся размер файла на диске
	orphan := filepath.Join(tv.dir, store.ObjectsDirName, "other", "orphan.enc")
	require.NoError(t, os.WriteFile(orphan, make([]byte, 64), 0o600))
	assert.Equal(t, int64(64), svc.FileSize(orphan))

	assert.Equal(t, int64(0), svc.FileSize(filepath.Join(tv.dir, "missing.enc")))
}

func TestVaultService_ResolvePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	svc := newTestVaultSvc(tv, nil)

	objectPath := storeObject(t, tv, models.PanelHeader, "a.pdf", "x")

	resolved, err := svc.ResolvePath(filepath.Base(objectPath))
	require.NoError(t, err)
	assert.Equal(t, objectPath, resolved)

	_, err = svc.ResolvePath("unknown.enc")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

// ── browsing ─────────────────────────────────────────────────────────────────

func TestVaultService_ListFolders_UnknownPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	svc := newTestVaultSvc(tv, nil)

	_, err := svc.ListFolders(context.Background(), "finance", nil)
	assert.ErrorIs(t, err, models.ErrUnknownPanel)
}

func TestVaultService_ListFolders_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	svc := newTestVaultSvc(tv, nil)
	ctx := context.Background()
	folders := []models.Folder{{ID: 1, Name: "Header", Panel: models.PanelHeader}}

	tv.index.EXPECT().GetSubfolders(ctx, nil, models.PanelHeader).Return(folders, nil)

	got, err := svc.ListFolders(ctx, models.PanelHeader, nil)
	require.NoError(t, err)
	assert.Equal(t, folders, got)
}

func TestVaultService_ListFilesAndCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	svc := newTestVaultSvc(tv, nil)
	ctx := context.Background()

	tv.index.EXPECT().ListChildren(ctx, int64(4)).Return([]models.FileRecord{{ID: 1}, {ID: 2}}, nil)
	tv.index.EXPECT().CountFilesInFolder(ctx, int64(4), true).Return(7, nil)

	files, err := svc.ListFiles(ctx, 4)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	n, err := svc.CountFiles(ctx, 4, true)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestVaultService_CreateFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	svc := newTestVaultSvc(tv, nil)
	ctx := context.Background()
	created := models.Folder{ID: 12, Name: "2026", ParentID: ptr(int64(1)), Panel: models.PanelOther, CreatedAt: time.Now()}

	tv.index.EXPECT().CreateFolder(ctx, "2026", ptr(int64(1)), models.PanelOther).Return(int64(12), nil)
	tv.index.EXPECT().GetFolder(ctx, int64(12)).Return(created, nil)

	folder, err := svc.CreateFolder(ctx, " 2026 ", ptr(int64(1)), models.PanelOther)
	require.NoError(t, err)
	assert.Equal(t, created, folder)
}

func TestVaultService_CreateFolder_InvalidName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tv := newTestVault(t, ctrl)
	svc := newTestVaultSvc(tv, nil)

	for _, name := range []string{"", "   ", "a/b", `a\b`} {
		_, err := svc.CreateFolder(context.Background(), name, nil, models.PanelOther)
		assert.ErrorIs(t, err, ErrInvalidFolderName, name)
	}
}
