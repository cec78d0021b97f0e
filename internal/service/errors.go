package service

import "errors"

var (
	// ErrSourceNotFound is recorded for an import source that is missing or
	// unreadable at ingestion time.
	ErrSourceNotFound = errors.New("import source not found")

	// ErrTypeRejected marks files whose extension is not importable. Such
	// files are skipped silently and never reported as failures.
	ErrTypeRejected = errors.New("file type not allowed")

	// ErrSearchInProgress is returned when a search is dropped because
	// another one is still running.
	ErrSearchInProgress = errors.New("search already in progress")

	// ErrParentFolderMissing is recorded by a mirrored import when the
	// catalog folder of a walked directory was never created.
	ErrParentFolderMissing = errors.New("mirrored parent folder missing")

	ErrInvalidFolderName     = errors.New("invalid folder name")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
