// Package handler aggregates the transport handlers of the PerceptronX
// server: the REST API and the detection service listener share one HTTP
// handler implementation with separate routers.
package handler

import (
	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/handler/http"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions store.SessionStore, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.APIAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, sessions, cfg, logger),
	}, nil
}
