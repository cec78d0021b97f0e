package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyManager owns the single symmetric key of a vault.
//
// The key is generated exactly once, on the first call against an empty
// vault, and persisted as the sole root of trust. Losing or replacing it makes
// every sealed object unrecoverable, so an existing but unreadable key file is
// reported and never regenerated.
type KeyManager interface {
	// GetOrCreateKey returns the vault key, creating and persisting it when
	// no key file exists yet. A present but corrupt key file yields
	// [ErrKeyCorrupt], which callers must treat as fatal.
	GetOrCreateKey() ([]byte, error)
}

// Cipher seals and unseals whole documents with authenticated encryption.
// It is stateless apart from the key it was built with and safe for
// concurrent use.
type Cipher interface {
	// Seal encrypts plaintext into a self-describing, integrity-protected
	// blob. Fails with [ErrCrypto] if the cipher has no key.
	Seal(plaintext []byte) ([]byte, error)

	// Unseal verifies and decrypts a blob produced by Seal. Any tampering,
	// truncation or a wrong key fails with [ErrCrypto]; corrupted plaintext
	// is never returned. Callers must not retry.
	Unseal(ciphertext []byte) ([]byte, error)
}
