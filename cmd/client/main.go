package main

import (
	"fmt"

	"github.com/futuristic/perceptronx/internal/adapter"
	"github.com/futuristic/perceptronx/internal/client"
	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("perceptronx-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sessions, err := newClientSessionStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	defer sessions.Close()

	apiClient, err := adapter.NewHTTPAPIClient(cfg.Adapter, sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	services := service.NewClientServices(apiClient, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// newClientSessionStore persists the session cookie to SQLite when a file
// is configured, so a remember-me login survives restarts.
func newClientSessionStore(cfg config.ClientStorage) (store.ClientSessionStore, error) {
	if cfg.SessionFile != "" {
		return store.NewClientSessionStore(cfg.SessionFile)
	}
	return store.NewMemoryClientSessionStore(), nil
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
