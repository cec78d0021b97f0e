// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownImportPolicy is returned by [ParseImportPolicy] for unsupported
// policy names.
var ErrUnknownImportPolicy = errors.New("unknown import policy")

// ImportPolicy selects how a directory tree is laid out in the catalog.
type ImportPolicy int

const (
	// ImportFlatten registers every file directly under the panel root
	// folder. Nesting is encoded into the display name with underscores.
	ImportFlatten ImportPolicy = iota

	// ImportMirrorStructure recreates the source directory hierarchy as
	// catalog folders and keeps original file names.
	ImportMirrorStructure
)

// ParseImportPolicy parses "flatten"/"direct" and "mirror"/"traditional".
// An empty string yields [ImportFlatten].
func ParseImportPolicy(s string) (ImportPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flatten", "direct":
		return ImportFlatten, nil
	case "mirror", "traditional":
		return ImportMirrorStructure, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownImportPolicy, s)
}

func (p ImportPolicy) String() string {
	if p == ImportMirrorStructure {
		return "mirror"
	}
	return "flatten"
}

// ProgressFunc receives (current, total) after every successfully imported
// file. total is fixed for the lifetime of one job.
type ProgressFunc func(current, total int)

// ImportJob describes one user-initiated import. It is never persisted.
type ImportJob struct {
	// Sources are files or directories to ingest.
	Sources []string

	// Panel is the destination panel.
	Panel Panel

	// TargetFolderID scopes the import to an existing folder. When nil the
	// panel root folder is used.
	TargetFolderID *int64

	// Policy selects flattening or mirroring for directory sources.
	Policy ImportPolicy

	// Progress is optional.
	Progress ProgressFunc
}

// ImportFailure records why one source file was not imported.
type ImportFailure struct {
	Path   string
	Reason error
}

// ImportResult is the aggregate outcome of an [ImportJob].
type ImportResult struct {
	// Total is the number of eligible files found by the pre-scan.
	Total int `json:"total"`

	// Imported counts successes only.
	Imported int `json:"imported"`

	Failures []ImportFailure `json:"-"`
}

// ImportEventKind distinguishes progress ticks from job completion.
type ImportEventKind int

const (
	ImportEventProgress ImportEventKind = iota
	ImportEventDone
)

// ImportEvent is delivered by the import worker to the control side.
type ImportEvent struct {
	Kind    ImportEventKind
	Current int
	Total   int
	Result  ImportResult
	Err     error
}
