// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// sealVersion is the first byte of every sealed blob. It is also bound
	// as associated data, so flipping it fails authentication.
	sealVersion byte = 1

	sealInfo = "go-doc-vault/seal/v1"
)

// aeadCipher is the AES-256-GCM implementation of [Cipher].
//
// Blob layout: version (1 byte) ‖ nonce (12 bytes) ‖ ciphertext ‖ tag.
type aeadCipher struct {
	aead cipher.AEAD
}

// NewCipher builds a [Cipher] from the vault key. The AES key is derived from
// the vault key with HKDF-SHA256 so the raw key file bytes are never used
// directly. Returns [ErrCrypto] if the key is absent or has the wrong size.
func NewCipher(key []byte) (Cipher, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key is absent", ErrCrypto)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key length %d, want %d", ErrCrypto, len(key), KeySize)
	}

	sealKey := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte(sealInfo)), sealKey); err != nil {
		return nil, fmt.Errorf("%w: derive key: %w", ErrCrypto, err)
	}

	block, err := aes.NewCipher(sealKey)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrCrypto, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrCrypto, err)
	}

	return &aeadCipher{aead: gcm}, nil
}

// Seal implements [Cipher].
func (c *aeadCipher) Seal(plaintext []byte) ([]byte, error) {
	if c == nil || c.aead == nil {
		return nil, fmt.Errorf("%w: key is absent", ErrCrypto)
	}

	nonceSize := c.aead.NonceSize()
	blob := make([]byte, 1+nonceSize, 1+nonceSize+len(plaintext)+c.aead.Overhead())
	blob[0] = sealVersion
	if _, err := io.ReadFull(rand.Reader, blob[1:]); err != nil {
		return nil, fmt.Errorf("%w: generate nonce: %w", ErrCrypto, err)
	}

	return c.aead.Seal(blob, blob[1:], plaintext, blob[:1]), nil
}

// Unseal implements [Cipher].
func (c *aeadCipher) Unseal(ciphertext []byte) ([]byte, error) {
	if c == nil || c.aead == nil {
		return nil, fmt.Errorf("%w: key is absent", ErrCrypto)
	}

	nonceSize := c.aead.NonceSize()
	if len(ciphertext) < 1+nonceSize+c.aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrCrypto)
	}
	if ciphertext[0] != sealVersion {
		return nil, fmt.Errorf("%w: unsupported blob version %d", ErrCrypto, ciphertext[0])
	}

	header, nonce, sealed := ciphertext[:1], ciphertext[1:1+nonceSize], ciphertext[1+nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, header)
	if err != nil {
		return nil, fmt.Errorf("%w: decrypt: %w", ErrCrypto, err)
	}

	return plaintext, nil
}
