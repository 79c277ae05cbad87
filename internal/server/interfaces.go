package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a termination signal arrives and the server has
// been shut down. Shutdown stops the server gracefully and may be called
// from another goroutine.
type Server interface {
	RunServer()
	Shutdown()
}
