// Package tui implements the terminal user interface of the PerceptronX
// client on top of Bubble Tea.
//
// The interface runs as two consecutive programs: the login flow, which
// ends once the server confirms a valid session, and the main loop with the
// therapist finder, appointments, messaging, profile, and detection-result
// screens. Both share one appModel; the mode decides which screens are
// reachable.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/service"
)

// ErrUserQuit is returned when the user closes the program from the
// keyboard instead of logging in or out.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	return &TUI{services: services, logger: log}, nil
}

// LoginFlow runs the authentication screens until a session is established.
// Returns ErrUserQuit when the user leaves without logging in.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginAppModel(ctx, t.services)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	return result.err
}

// MainLoop runs the post-login screens. It returns logout=true when the
// user explicitly logged out, in which case the caller restarts the login
// flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return false, result.err
	}

	return result.logout, nil
}
