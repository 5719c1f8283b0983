package client

import (
	"context"
	"errors"
	"time"

	"github.com/futuristic/perceptronx/internal/config"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/tui"
	"github.com/futuristic/perceptronx/internal/workers"
)

const defaultStatusInterval = 5 * time.Minute

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client services and ui are required")
	}

	return &App{
		services: services,
		tui:      ui,
		workers:  workersCfg,
		logger:   log,
	}, nil
}

// Run drives one full client session: an initial status check, the login
// flow if no session survived, then the main loop with the periodic status
// job running in the background. An explicit logout restarts the cycle.
func (a *App) Run() error {
	ctx := context.Background()

	// A remembered cookie may still be valid from a previous run; the
	// status check tells us whether the login flow can be skipped.
	if _, err := a.services.AuthService.Status(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial session check failed")
	}

	if a.services.AuthService.State() != service.StateLoggedIn {
		if err := a.tui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	interval := a.workers.StatusInterval
	if interval <= 0 {
		interval = defaultStatusInterval
	}

	background := workers.New(&statusWorker{
		ctx:      ctx,
		job:      a.services.StatusJob,
		interval: interval,
	})
	background.Run()
	defer a.services.StatusJob.Stop()

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		a.services.StatusJob.Stop()
		return a.Run()
	}

	return nil
}

// statusWorker adapts the periodic session status job to the workers
// aggregate.
type statusWorker struct {
	ctx      context.Context
	job      service.ClientStatusJob
	interval time.Duration
}

func (w *statusWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
