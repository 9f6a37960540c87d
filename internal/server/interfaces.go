package server

import "context"

// Server defines the lifecycle contract of the control API server.
type Server interface {
	// Run serves requests until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error
}
