package http

import (
	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
)

type Handler struct {
	services *service.Services
	sessions store.SessionStore
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions store.SessionStore, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}
