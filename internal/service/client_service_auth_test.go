package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/futuristic/perceptronx/internal/adapter"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/mock"
	"github.com/futuristic/perceptronx/internal/validators"
	"github.com/futuristic/perceptronx/models"
)

func newTestClientAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockSessionClient) {
	t.Helper()
	mockSession := mock.NewMockSessionClient(ctrl)

	svc := NewClientAuthService(mockSession, validators.NewFormValidator(), logger.NewLogger("test")).(*clientAuthService)

	return svc, mockSession
}

func validCreds() models.LoginRequest {
	return models.LoginRequest{Username: "patient", Password: "pass-123"}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Login(ctx, validCreds()).Return(models.SessionValid, nil)

	require.NoError(t, svc.Login(ctx, validCreds()))
	assert.Equal(t, StateLoggedIn, svc.State())
}

func TestClientAuthService_Login_ValidationShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientAuthSvc(t, ctrl)

	// No adapter expectation: an empty form must never reach the network.
	err := svc.Login(context.Background(), models.LoginRequest{Username: "patient"})
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
	assert.Equal(t, StateUnknown, svc.State())
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Login(ctx, validCreds()).Return(models.SessionInvalid, adapter.ErrUnauthorized)

	err := svc.Login(ctx, validCreds())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateLoggedOut, svc.State())
}

func TestClientAuthService_Login_InvalidStatusWithoutError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Login(ctx, validCreds()).Return(models.SessionInvalid, nil)

	err := svc.Login(ctx, validCreds())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateLoggedOut, svc.State())
}

func TestClientAuthService_Login_ServerDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Login(ctx, validCreds()).Return(models.SessionInvalid, adapter.ErrNetwork)

	err := svc.Login(ctx, validCreds())
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.Equal(t, StateLoggedOut, svc.State())
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	reg := models.RegisterRequest{Username: "newpatient", Email: "new@example.com", Password: "pass-123"}
	mockSession.EXPECT().Register(ctx, reg).Return(models.SessionValid, nil)

	require.NoError(t, svc.Register(ctx, reg, "pass-123"))
	assert.Equal(t, StateLoggedIn, svc.State())
}

func TestClientAuthService_Register_PasswordMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientAuthSvc(t, ctrl)

	reg := models.RegisterRequest{Username: "newpatient", Email: "new@example.com", Password: "pass-123"}
	err := svc.Register(context.Background(), reg, "pass-124")
	assert.ErrorIs(t, err, validators.ErrPasswordsMismatch)
	assert.Equal(t, StateUnknown, svc.State())
}

func TestClientAuthService_Register_ServerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	reg := models.RegisterRequest{Username: "newpatient", Email: "new@example.com", Password: "pass-123"}
	mockSession.EXPECT().Register(ctx, reg).Return(models.SessionInvalid, adapter.ErrServer)

	err := svc.Register(ctx, reg, "pass-123")
	assert.ErrorIs(t, err, ErrRegisterOnServer)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout_ClearsStateEvenOnServerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Login(ctx, validCreds()).Return(models.SessionValid, nil)
	require.NoError(t, svc.Login(ctx, validCreds()))
	require.Equal(t, StateLoggedIn, svc.State())

	mockSession.EXPECT().Logout(ctx).Return(adapter.ErrNetwork)

	err := svc.Logout(ctx)
	assert.Error(t, err)
	assert.Equal(t, StateLoggedOut, svc.State())
}

func TestClientAuthService_Logout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Logout(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, StateLoggedOut, svc.State())
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Status_StateMachine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Status(ctx).Return(models.SessionValid, nil)
	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SessionValid, status)
	assert.Equal(t, StateLoggedIn, svc.State())

	mockSession.EXPECT().Status(ctx).Return(models.SessionInvalid, nil)
	status, err = svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SessionInvalid, status)
	assert.Equal(t, StateLoggedOut, svc.State())
}

func TestClientAuthService_Status_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().Status(ctx).Return(models.SessionInvalid, adapter.ErrNetwork)

	status, err := svc.Status(ctx)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.Equal(t, models.SessionInvalid, status)
	assert.Equal(t, StateLoggedOut, svc.State())
}

// ── ResetPassword ────────────────────────────────────────────────────────────

func TestClientAuthService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().ResetPassword(ctx, "patient@example.com").Return(nil)

	require.NoError(t, svc.ResetPassword(ctx, "patient@example.com"))
}

func TestClientAuthService_ResetPassword_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientAuthSvc(t, ctrl)

	err := svc.ResetPassword(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestClientAuthService_ResetPassword_ServerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockSession := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSession.EXPECT().ResetPassword(ctx, "patient@example.com").Return(errors.New("boom"))

	err := svc.ResetPassword(ctx, "patient@example.com")
	assert.ErrorIs(t, err, ErrResetOnServer)
}
