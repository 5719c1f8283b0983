package server

// Server runs application listeners and shuts them down gracefully.
type Server interface {
	RunServer()
	Shutdown()
}

// listener is a single transport bound to one address.
type listener interface {
	RunServer() error
	Shutdown() error
}
