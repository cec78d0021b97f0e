// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// MetadataRecord maps an opaque sealed object back to the document it was
// created from. Records are keyed by the object's on-disk name.
type MetadataRecord struct {
	// OriginalName is the display name the document was imported under.
	OriginalName string `json:"original_name"`

	// Panel is the panel the sealed object lives in.
	Panel Panel `json:"panel"`

	// Size is the plaintext size in bytes.
	Size int64 `json:"size"`

	// CreatedAt is the creation time of the source file, stored as
	// fractional unix seconds.
	CreatedAt UnixTime `json:"created_at"`

	// ObjectID is the random identifier embedded in the object name.
	ObjectID string `json:"file_id"`
}

// UnixTime is a time.Time serialized as fractional unix seconds.
type UnixTime float64

// NewUnixTime converts t to [UnixTime].
func NewUnixTime(t time.Time) UnixTime {
	return UnixTime(float64(t.UnixNano()) / float64(time.Second))
}

// Time converts u back to a time.Time in the local zone.
func (u UnixTime) Time() time.Time {
	sec, frac := math.Modf(float64(u))
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}
