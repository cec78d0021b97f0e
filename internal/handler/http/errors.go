// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidFolderID is returned when a folder id path or query
	// parameter is not a positive integer.
	ErrInvalidFolderID = errors.New("invalid folder id")

	// ErrNoSources is returned for an import request without sources.
	ErrNoSources = errors.New("no import sources given")
)
