package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

const (
	// ObjectsDirName is the hidden directory holding sealed objects.
	ObjectsDirName = ".encrypted"

	// ObjectExt is the extension of every sealed object.
	ObjectExt = ".enc"
)

// ObjectName builds the on-disk name of a sealed object. The name reveals
// nothing about the document except an 8 hex digit digest of its display
// name, which keeps concurrent imports of different names apart.
func ObjectName(id, displayName string) string {
	sum := sha256.Sum256([]byte(displayName))
	return id + "_" + hex.EncodeToString(sum[:])[:8] + ObjectExt
}

type fileVaultStore struct {
	root       string
	objectsDir string
	logger     *logger.Logger
}

// NewVaultStore constructs a [VaultStore] rooted at vaultDir.
func NewVaultStore(vaultDir string, log *logger.Logger) VaultStore {
	return &fileVaultStore{
		root:       vaultDir,
		objectsDir: filepath.Join(vaultDir, ObjectsDirName),
		logger:     log,
	}
}

func (s *fileVaultStore) Root() string {
	return s.root
}

func (s *fileVaultStore) EnsureLayout() error {
	for _, panel := range models.Panels() {
		if err := os.MkdirAll(filepath.Join(s.objectsDir, string(panel)), 0o700); err != nil {
			return fmt.Errorf("create panel dir %s: %w", panel, err)
		}
	}

	if err := utils.HideFile(s.objectsDir); err != nil {
		s.logger.Debug().Err(err).Str("path", s.objectsDir).Msg("could not hide objects dir")
	}

	return nil
}

func (s *fileVaultStore) PathFor(panel models.Panel, objectName string) (string, error) {
	if !panel.Valid() {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownPanel, panel)
	}
	if objectName == "" || objectName != filepath.Base(objectName) {
		return "", fmt.Errorf("invalid object name %q", objectName)
	}

	return filepath.Join(s.objectsDir, string(panel), objectName), nil
}

func (s *fileVaultStore) Write(panel models.Panel, objectName string, data []byte) (string, error) {
	path, err := s.PathFor(panel, objectName)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create panel dir: %w", err)
	}

	if err = utils.WriteFileAtomic(path, data, 0o600); err != nil {
		s.logger.Err(err).
			Str("func", "fileVaultStore.Write").
			Str("panel", string(panel)).
			Str("object", objectName).
			Msg("failed to write sealed object")
		return "", fmt.Errorf("write sealed object: %w", err)
	}

	return path, nil
}

func (s *fileVaultStore) ReadObject(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read sealed object: %w", err)
	}

	return data, nil
}

func (s *fileVaultStore) Delete(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("delete sealed object: %w", err)
}

func (s *fileVaultStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (s *fileVaultStore) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w: %s", ErrObjectNotFound, filepath.Base(path))
	}
	if err != nil {
		return 0, err
	}

	return info.Size(), nil
}
