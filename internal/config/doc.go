// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Anything still unset afterwards gets a default derived from the vault
// directory. The main entry points are [GetStructuredConfig] for the
// terminal client and [GetServerConfig] for the HTTP server.
package config
