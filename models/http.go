package models

// ImportRequest is the body of POST /api/imports.
type ImportRequest struct {
	// Sources are absolute paths on the vault host.
	Sources []string `json:"sources"`

	// Panel is the destination panel identifier.
	Panel string `json:"panel"`

	// FolderID scopes single-file sources to an existing folder.
	FolderID *int64 `json:"folder_id,omitempty"`

	// Policy is "flatten" (default) or "mirror".
	Policy string `json:"policy,omitempty"`
}

// CreateFolderRequest is the body of POST /api/panels/{panel}/folders.
type CreateFolderRequest struct {
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}
