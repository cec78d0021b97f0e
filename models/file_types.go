// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"xlsx": {},
	"doc":  {},
	"xls":  {},
}

var fileIcons = map[string]string{
	"pdf":  "📕",
	"docx": "📘",
	"doc":  "📘",
	"xlsx": "📗",
	"xls":  "📗",
	"txt":  "📄",
}

// Extension returns the lower-cased extension of name without the dot.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// IsAllowedFile reports whether name has one of the importable extensions
// (pdf, docx, xlsx, doc, xls), compared case-insensitively.
func IsAllowedFile(name string) bool {
	_, ok := allowedExtensions[Extension(name)]
	return ok
}

// FileIcon returns an icon for the extension ext (with or without dot).
func FileIcon(ext string) string {
	if icon, ok := fileIcons[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return icon
	}
	return "📄"
}

// FormatFileSize renders size with two decimals in B, KB, MB, GB or TB.
func FormatFileSize(size int64) string {
	value := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if value < 1024 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.2f TB", value)
}
