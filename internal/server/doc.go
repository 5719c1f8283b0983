// Package server wires and runs the application's HTTP listeners.
//
// It provides orchestration for the API server and the optional detection
// service listener, including startup, signal handling, and graceful
// shutdown of all enabled transports.
package server
