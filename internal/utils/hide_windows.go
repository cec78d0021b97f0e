//go:build windows

package utils

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// HideFile sets FILE_ATTRIBUTE_HIDDEN on path, keeping its other attributes.
func HideFile(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encode path: %w", err)
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return fmt.Errorf("get file attributes: %w", err)
	}
	if attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0 {
		return nil
	}

	if err = windows.SetFileAttributes(p, attrs|windows.FILE_ATTRIBUTE_HIDDEN); err != nil {
		return fmt.Errorf("set file attributes: %w", err)
	}
	return nil
}
