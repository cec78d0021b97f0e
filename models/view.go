// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ViewHandle points at a temporary plaintext copy of a sealed object. The
// file is deleted at ExpiresAt whether or not a viewer still uses it.
type ViewHandle struct {
	Path         string    `json:"path"`
	OriginalName string    `json:"original_name"`
	ObjectName   string    `json:"object_name"`
	ExpiresAt    time.Time `json:"expires_at"`
}
