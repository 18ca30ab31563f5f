package server

import "context"

// Server defines the lifecycle contract of the daemon.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Background is a set of workers started with the server and stopped after
// it. [workers.Workers] satisfies it.
type Background interface {
	Run(ctx context.Context) error
	Stop()
}
