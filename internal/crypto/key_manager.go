// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
)

const (
	// KeySize is the length of the vault key in bytes (256 bits).
	KeySize = 32

	// KeyFileName is the name of the key file inside the vault root.
	KeyFileName = ".encryption.key"

	keyTempPattern = ".encryption.key.tmp-*"
)

// fileKeyManager is the file-backed implementation of [KeyManager]. The key
// is stored base64url-encoded in <vaultDir>/.encryption.key.
type fileKeyManager struct {
	vaultDir string
	keyPath  string
	logger   *logger.Logger

	mu sync.Mutex
}

// NewKeyManager constructs a [KeyManager] rooted at vaultDir. Nothing is
// touched on disk until GetOrCreateKey is called.
func NewKeyManager(vaultDir string, log *logger.Logger) KeyManager {
	return &fileKeyManager{
		vaultDir: vaultDir,
		keyPath:  filepath.Join(vaultDir, KeyFileName),
		logger:   log,
	}
}

// GetOrCreateKey implements [KeyManager].
func (k *fileKeyManager) GetOrCreateKey() ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	data, err := os.ReadFile(k.keyPath)
	if err == nil {
		return decodeKey(data)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		k.logger.Err(err).Str("func", "fileKeyManager.GetOrCreateKey").Msg("key file exists but cannot be read")
		return nil, fmt.Errorf("%w: read key file: %w", ErrVaultInitialization, err)
	}

	return k.createKey()
}

func (k *fileKeyManager) createKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: generate key: %w", ErrVaultInitialization, err)
	}

	if err := os.MkdirAll(k.vaultDir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: create vault dir: %w", ErrVaultInitialization, err)
	}

	// The key is fully written to a temp file before it appears under its
	// real name. os.Link fails if the name exists, so a concurrent creator
	// that linked first wins and its key is the one everybody must use.
	tmpPath, err := writeTempKey(k.vaultDir, base64.URLEncoding.EncodeToString(key))
	if err != nil {
		return nil, fmt.Errorf("%w: write key file: %w", ErrVaultInitialization, err)
	}
	defer os.Remove(tmpPath)

	err = os.Link(tmpPath, k.keyPath)
	if errors.Is(err, fs.ErrExist) {
		data, readErr := os.ReadFile(k.keyPath)
		if readErr != nil {
			return nil, fmt.Errorf("%w: read key file: %w", ErrVaultInitialization, readErr)
		}
		return decodeKey(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: create key file: %w", ErrVaultInitialization, err)
	}

	if err = utils.HideFile(k.keyPath); err != nil {
		k.logger.Debug().Err(err).Str("path", k.keyPath).Msg("could not hide key file")
	}

	k.logger.Info().Str("path", k.keyPath).Msg("new encryption key generated")
	return key, nil
}

// writeTempKey stores encoded in a synced 0600 temp file inside dir and
// returns its path.
func writeTempKey(dir, encoded string) (string, error) {
	f, err := os.CreateTemp(dir, keyTempPattern)
	if err != nil {
		return "", err
	}
	path := f.Name()

	if err = f.Chmod(0o600); err == nil {
		if _, err = f.WriteString(encoded); err == nil {
			err = f.Sync()
		}
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	return path, nil
}

func decodeKey(data []byte) ([]byte, error) {
	key, err := base64.URLEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyCorrupt, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key length %d, want %d", ErrKeyCorrupt, len(key), KeySize)
	}
	return key, nil
}
