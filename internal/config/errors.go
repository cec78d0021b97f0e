package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid vault settings
	// (for example, a negative view cleanup delay).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSearchConfigs indicates invalid search settings
	// (for example, a non-positive result limit).
	ErrInvalidSearchConfigs = errors.New("invalid search configuration")
	// ErrInvalidStorageConfigs indicates invalid catalog storage settings
	// (for example, an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
