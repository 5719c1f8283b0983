package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/futuristic/perceptronx/internal/adapter"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/validators"
	"github.com/futuristic/perceptronx/models"
)

type clientAuthService struct {
	adapter   adapter.SessionClient
	validator validators.Validator
	logger    *logger.Logger

	mu    sync.RWMutex
	state SessionState
}

func NewClientAuthService(sessionClient adapter.SessionClient, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   sessionClient,
		validator: validator,
		logger:    logger,
		state:     StateUnknown,
	}
}

// Login validates the form, performs the login call and advances the state
// machine. The transition to StateLoggedIn happens only on a valid session
// status; every other outcome (including transport failure) lands in
// StateLoggedOut.
func (a *clientAuthService) Login(ctx context.Context, creds models.LoginRequest) error {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return err
	}

	status, err := a.adapter.Login(ctx, creds)
	if err != nil {
		a.setState(StateLoggedOut)
		if isCredentialRejection(err) {
			return ErrInvalidCredentials
		}
		return mapAdapterError(err)
	}

	if status != models.SessionValid {
		a.setState(StateLoggedOut)
		return ErrInvalidCredentials
	}

	a.setState(StateLoggedIn)
	a.logger.Info().Str("username", creds.Username).Msg("logged in")
	return nil
}

// Register validates the form including the password confirmation, creates
// the account and logs the new user in when the server reports a valid
// session.
func (a *clientAuthService) Register(ctx context.Context, reg models.RegisterRequest, passwordConfirmation string) error {
	if err := a.validator.Validate(ctx, reg); err != nil {
		return err
	}
	if err := validators.PasswordsMatch(reg.Password, passwordConfirmation); err != nil {
		return err
	}

	status, err := a.adapter.Register(ctx, reg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegisterOnServer, mapAdapterError(err))
	}
	if status != models.SessionValid {
		return ErrRegisterOnServer
	}

	a.setState(StateLoggedIn)
	a.logger.Info().Str("username", reg.Username).Msg("registered")
	return nil
}

// Logout invalidates the session. Whatever the server answers, the state
// machine moves to StateLoggedOut: the adapter has already dropped the
// cookie, and a client that believes it is still logged in after a logout
// attempt is worse than a dangling server-side session.
func (a *clientAuthService) Logout(ctx context.Context) error {
	err := a.adapter.Logout(ctx)
	a.setState(StateLoggedOut)

	if err != nil {
		a.logger.Warn().Err(err).Msg("server-side logout failed, local session cleared anyway")
		return mapAdapterError(err)
	}

	a.logger.Info().Msg("logged out")
	return nil
}

// Status re-checks the session and moves the state machine accordingly. It
// is the startup call that decides the initial screen.
func (a *clientAuthService) Status(ctx context.Context) (models.SessionStatus, error) {
	status, err := a.adapter.Status(ctx)
	if err != nil {
		a.setState(StateLoggedOut)
		return models.SessionInvalid, mapAdapterError(err)
	}

	if status == models.SessionValid {
		a.setState(StateLoggedIn)
	} else {
		a.setState(StateLoggedOut)
	}

	return status, nil
}

// ResetPassword validates the email and fires the reset request. The call
// is fire-and-forget from the screen's perspective.
func (a *clientAuthService) ResetPassword(ctx context.Context, email string) error {
	if err := a.validator.Validate(ctx, models.ResetPasswordRequest{Email: email}); err != nil {
		return err
	}

	if err := a.adapter.ResetPassword(ctx, email); err != nil {
		return fmt.Errorf("%w: %v", ErrResetOnServer, mapAdapterError(err))
	}

	return nil
}

func (a *clientAuthService) State() SessionState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *clientAuthService) setState(state SessionState) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()
}

// isCredentialRejection reports whether the transport error means the
// server understood the request and said no, as opposed to not answering.
func isCredentialRejection(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}
