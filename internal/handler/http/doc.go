// Package http exposes the vault over a local REST API.
//
// Handlers translate requests into service calls and map the sentinel errors
// of the service and store layers to status codes. Trace ids, access logging
// and request timeouts are applied as middleware.
package http
