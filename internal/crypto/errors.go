// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrVaultInitialization is the root of every fatal key lifecycle
	// failure. The vault is unusable until the cause is fixed by hand.
	ErrVaultInitialization = errors.New("vault initialization failed")

	// ErrKeyCorrupt is returned when the key file exists but does not hold
	// a valid key. It wraps [ErrVaultInitialization].
	ErrKeyCorrupt = fmt.Errorf("%w: encryption key file is corrupt", ErrVaultInitialization)

	// ErrCrypto is returned by seal/unseal. For unseal it means the object
	// is unreadable: tampered, truncated or sealed with another key.
	ErrCrypto = errors.New("crypto error")
)
