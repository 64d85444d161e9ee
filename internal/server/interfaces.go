package server

import "context"

// Server defines the lifecycle contract of the journal server.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and the server has shut down.
	RunServer()

	// Run serves until ctx is cancelled, then shuts down gracefully. It
	// returns an error if the server could not start.
	Run(ctx context.Context) error
}
