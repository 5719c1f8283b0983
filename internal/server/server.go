package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/handler"
	"github.com/futuristic/perceptronx/internal/logger"
)

type server struct {
	listeners []listener
	logger    *logger.Logger
}

// NewServer builds the API listener and, when a detection address is
// configured, the detection service listener.
func NewServer(handlers *handler.Handlers, cfg config.Server, log *logger.Logger) (Server, error) {
	var listeners []listener

	if cfg.APIAddress != "" {
		listeners = append(listeners, newHTTPServer("api", cfg.APIAddress, handlers.HTTP.Init(), log))
	}
	if cfg.DetectionAddress != "" {
		listeners = append(listeners, newHTTPServer("detection", cfg.DetectionAddress, handlers.HTTP.InitDetection(), log))
	}

	if len(listeners) == 0 {
		return nil, errNoServersAreCreated
	}

	return &server{listeners: listeners, logger: log}, nil
}

// RunServer starts all listeners and blocks until an interrupt signal
// arrives, then shuts them down gracefully.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	idleConnectionsClosed := make(chan struct{})

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	for _, l := range s.listeners {
		go func() {
			if err := l.RunServer(); err != nil {
				s.logger.Error().Err(err).Msg("listener stopped with error")
				stop()
			}
		}()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("all servers stopped")
}

// Shutdown stops every listener.
func (s *server) Shutdown() {
	for _, l := range s.listeners {
		if err := l.Shutdown(); err != nil {
			s.logger.Error().Err(err).Msg("listener shutdown failed")
		}
	}
}
