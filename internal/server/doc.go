// Package server runs the local HTTP API of the vault until the process
// receives a termination signal, then shuts it down gracefully.
package server
