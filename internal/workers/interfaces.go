// Package workers runs the background side of the vault: import jobs,
// delayed cleanup of decrypted view files and the startup sweep of the temp
// directory.
package workers

// Worker is a background job started once during application startup.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}
