//go:build !windows

package utils

// HideFile is a no-op outside Windows: the dot prefix already hides vault
// files from directory listings.
func HideFile(string) error {
	return nil
}
