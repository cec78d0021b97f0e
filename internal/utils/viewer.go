package utils

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
)

// OpenWithSystemViewer hands path to the operating system's default
// application for its file type and returns without waiting for it to exit.
func OpenWithSystemViewer(path string) error {
	if err := open.Start(path); err != nil {
		return fmt.Errorf("open %s with system viewer: %w", path, err)
	}
	return nil
}
