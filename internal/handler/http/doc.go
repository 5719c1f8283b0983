// Package http implements the HTTP transport layer of the PerceptronX
// server.
//
// It exposes route wiring, request handlers, and middleware for the REST
// API and the detection service listener. Session authentication, request
// tracing, and access logging are handled in this package before requests
// are delegated to the service layer.
package http
