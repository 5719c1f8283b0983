package main

import (
	"context"
	"fmt"

	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/handler"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/server"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("perceptronx-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	sessions, err := newSessionStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newSessionStore picks Redis when an address is configured, otherwise the
// in-process store.
func newSessionStore(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (store.SessionStore, error) {
	if cfg.Storage.Redis.Addr != "" {
		return store.NewRedisSessionStore(ctx, cfg.Storage.Redis, cfg.Server.SessionTTL, log)
	}
	return store.NewMemorySessionStore(cfg.Server.SessionTTL, log), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
