// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Folder is a node of the catalog index hierarchy. Root folders of a panel
// have a nil ParentID.
type Folder struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	Panel     Panel     `json:"panel"`
	CreatedAt time.Time `json:"created_at"`
}

// FileRecord is a file entry of the catalog index. Filepath points at the
// sealed object inside the vault store.
type FileRecord struct {
	ID         int64     `json:"id"`
	FolderID   int64     `json:"folder_id"`
	Filename   string    `json:"filename"`
	Filepath   string    `json:"filepath"`
	Extension  string    `json:"extension"`
	Panel      Panel     `json:"panel"`
	FolderName string    `json:"folder_name"`
	CreatedAt  time.Time `json:"created_at"`
}
