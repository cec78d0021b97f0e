// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// FileTypeFilter narrows a search to a document family.
type FileTypeFilter string

const (
	FileTypeAll   FileTypeFilter = ""
	FileTypePDF   FileTypeFilter = "pdf"
	FileTypeWord  FileTypeFilter = "word"
	FileTypeExcel FileTypeFilter = "excel"
)

// FileTypeFilters lists the filters in the order the UI cycles through them.
func FileTypeFilters() []FileTypeFilter {
	return []FileTypeFilter{FileTypeAll, FileTypePDF, FileTypeWord, FileTypeExcel}
}

// ParseFileTypeFilter accepts "", "all", "pdf", "word" and "excel". Unknown
// values fall back to [FileTypeAll].
func ParseFileTypeFilter(s string) FileTypeFilter {
	switch f := FileTypeFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case FileTypePDF, FileTypeWord, FileTypeExcel:
		return f
	}
	return FileTypeAll
}

// Extensions returns the file extensions matched by the filter, or nil for
// [FileTypeAll].
func (f FileTypeFilter) Extensions() []string {
	switch f {
	case FileTypePDF:
		return []string{"pdf"}
	case FileTypeWord:
		return []string{"docx", "doc"}
	case FileTypeExcel:
		return []string{"xlsx", "xls"}
	}
	return nil
}

func (f FileTypeFilter) String() string {
	if f == FileTypeAll {
		return "all"
	}
	return string(f)
}

// SearchFilter is the user-facing query of the search service. An empty
// Panel means all panels.
type SearchFilter struct {
	Name  string
	Type  FileTypeFilter
	Panel Panel
}

// CacheKey returns the normalized identity of the filter.
func (f SearchFilter) CacheKey() string {
	return strings.ToLower(strings.TrimSpace(f.Name)) + "\x00" + string(f.Type) + "\x00" + string(f.Panel)
}

// SearchQuery is the catalog index level query.
type SearchQuery struct {
	Filename   string
	Extensions []string
	Panel      Panel
	Limit      uint64
}

// SearchResult is returned by the search service.
type SearchResult struct {
	Records []FileRecord
	Cached  bool
	Elapsed time.Duration
}
