package server

// Server is the catalogue sync API process.
type Server interface {
	// RunServer blocks until a stop signal arrives and the listener drains.
	RunServer()
	Shutdown()
}
