package server

import "context"

// Server defines the lifecycle contract of the process's transport server.
//
// RunServer blocks until ctx is cancelled or a termination signal arrives,
// then shuts down gracefully. It returns a non-nil error only when the
// listener fails or shutdown does not finish in time.
type Server interface {
	RunServer(ctx context.Context) error
}
