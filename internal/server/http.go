package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/futuristic/perceptronx/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type httpServer struct {
	name   string
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(name, address string, handler http.Handler, log *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:    address,
			Handler: handler,
		},
		logger: log,
	}
}

// RunServer starts accepting connections and blocks until shutdown.
func (s *httpServer) RunServer() error {
	s.logger.Info().Str("address", s.server.Addr).Msgf("%s server started", s.name)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown stops the listener, waiting for in-flight requests to finish.
func (s *httpServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info().Msgf("%s server is shutting down", s.name)

	return s.server.Shutdown(ctx)
}
