package server

// Server is the lifecycle of the local API server.
type Server interface {
	// RunServer serves requests and blocks until a termination signal
	// arrives.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
