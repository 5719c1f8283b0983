package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/models"
)

// ── loginUser ───────────────────────────────────────────────────────────────

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		gomock.InOrder(
			mocks.auth.EXPECT().
				Login(gomock.Any(), "cure53", "s3cret").
				Return(models.User{UserID: 7, Username: "cure53"}, nil),
			mocks.sessions.EXPECT().
				Create(gomock.Any(), int64(7), false).
				Return(testSessionID, nil),
		)

		w := doRequest(t, h.Init(), http.MethodPost, "/loginUser", models.LoginRequest{
			Username: "cure53",
			Password: "s3cret",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "valid", decodeBody[models.StatusResponse](t, w).Status)

		cookie := findCookie(t, w, models.SessionCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, testSessionID, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Expires.IsZero(), "session cookie must not outlive the browser")
	})

	t.Run("remember me produces a long-lived cookie", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			Login(gomock.Any(), "cure53", "s3cret").
			Return(models.User{UserID: 7}, nil)
		mocks.sessions.EXPECT().
			Create(gomock.Any(), int64(7), true).
			Return(testSessionID, nil)

		w := doRequest(t, h.Init(), http.MethodPost, "/loginUser", models.LoginRequest{
			Username:   "cure53",
			Password:   "s3cret",
			RememberMe: true,
		})

		require.Equal(t, http.StatusOK, w.Code)
		cookie := findCookie(t, w, models.SessionCookieName)
		require.NotNil(t, cookie)
		assert.True(t, cookie.Expires.After(time.Now().Add(29*24*time.Hour)))
	})

	t.Run("wrong credentials answer 401 with a detail body", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			Login(gomock.Any(), "cure53", "wrong").
			Return(models.User{}, service.ErrWrongCredentials)

		w := doRequest(t, h.Init(), http.MethodPost, "/loginUser", models.LoginRequest{
			Username: "cure53",
			Password: "wrong",
		})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid username or password", decodeBody[models.ErrorResponse](t, w).Detail)
		assert.Nil(t, findCookie(t, w, models.SessionCookieName))
	})

	t.Run("malformed JSON answers 400", func(t *testing.T) {
		h, _ := newTestHandler(ctrl)

		w := doRequest(t, h.Init(), http.MethodPost, "/loginUser", "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("session store failure answers 500", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			Login(gomock.Any(), "cure53", "s3cret").
			Return(models.User{UserID: 7}, nil)
		mocks.sessions.EXPECT().
			Create(gomock.Any(), int64(7), false).
			Return("", errors.New("redis: connection refused"))

		w := doRequest(t, h.Init(), http.MethodPost, "/loginUser", models.LoginRequest{
			Username: "cure53",
			Password: "s3cret",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// ── registerUser ────────────────────────────────────────────────────────────

func TestRegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("new account is logged in immediately", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			RegisterUser(gomock.Any(), models.User{
				Username:     "newbie",
				Email:        "newbie@example.com",
				PasswordHash: "plaintext-password",
			}).
			Return(models.User{UserID: 12, Username: "newbie"}, nil)
		mocks.sessions.EXPECT().
			Create(gomock.Any(), int64(12), false).
			Return(testSessionID, nil)

		w := doRequest(t, h.Init(), http.MethodPost, "/registerUser", models.RegisterRequest{
			Username: "newbie",
			Email:    "newbie@example.com",
			Password: "plaintext-password",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "valid", decodeBody[models.StatusResponse](t, w).Status)
		require.NotNil(t, findCookie(t, w, models.SessionCookieName))
	})

	t.Run("duplicate account answers 409", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			RegisterUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, store.ErrUserAlreadyExists)

		w := doRequest(t, h.Init(), http.MethodPost, "/registerUser", models.RegisterRequest{
			Username: "taken",
			Email:    "taken@example.com",
			Password: "x",
		})

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Username or email already exists.", decodeBody[models.ErrorResponse](t, w).Detail)
	})

	t.Run("empty fields answer 400", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			RegisterUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, service.ErrInvalidDataProvided)

		w := doRequest(t, h.Init(), http.MethodPost, "/registerUser", models.RegisterRequest{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// ── sessionStatus ───────────────────────────────────────────────────────────

func TestSessionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("known cookie is valid", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		w := doRequest(t, h.Init(), http.MethodGet, "/", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "valid", decodeBody[models.StatusResponse](t, w).Status)
	})

	t.Run("missing cookie is invalid, not an error", func(t *testing.T) {
		h, _ := newTestHandler(ctrl)

		w := doRequest(t, h.Init(), http.MethodGet, "/", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "invalid", decodeBody[models.StatusResponse](t, w).Status)
	})

	t.Run("unknown cookie is invalid", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.sessions.EXPECT().
			Find(gomock.Any(), testSessionID).
			Return(models.Session{}, store.ErrSessionNotFound)

		w := doRequest(t, h.Init(), http.MethodGet, "/", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "invalid", decodeBody[models.StatusResponse](t, w).Status)
	})
}

// ── logout ──────────────────────────────────────────────────────────────────

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("deletes the session and expires the cookie", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.sessions.EXPECT().
			Delete(gomock.Any(), testSessionID).
			Return(nil)

		w := doRequest(t, h.Init(), http.MethodPost, "/logout", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "invalid", decodeBody[models.StatusResponse](t, w).Status)

		cookie := findCookie(t, w, models.SessionCookieName)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("logout without a cookie still succeeds", func(t *testing.T) {
		h, _ := newTestHandler(ctrl)

		w := doRequest(t, h.Init(), http.MethodPost, "/logout", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "invalid", decodeBody[models.StatusResponse](t, w).Status)
	})

	t.Run("an already deleted session is not an error", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.sessions.EXPECT().
			Delete(gomock.Any(), testSessionID).
			Return(store.ErrSessionNotFound)

		w := doRequest(t, h.Init(), http.MethodPost, "/logout", nil, sessionCookie())

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// ── resetPassword ───────────────────────────────────────────────────────────

func TestResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("known email issues a token", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			CreateResetToken(gomock.Any(), "cure53@example.com").
			Return(models.Token{}, nil)

		w := doRequest(t, h.Init(), http.MethodPost, "/reset-password", models.ResetPasswordRequest{
			Email: "cure53@example.com",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "valid", decodeBody[models.StatusResponse](t, w).Status)
	})

	t.Run("unknown email answers identically", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			CreateResetToken(gomock.Any(), "ghost@example.com").
			Return(models.Token{}, store.ErrNoUserWasFound)

		w := doRequest(t, h.Init(), http.MethodPost, "/reset-password", models.ResetPasswordRequest{
			Email: "ghost@example.com",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "valid", decodeBody[models.StatusResponse](t, w).Status)
	})
}

// ── confirmResetPassword ────────────────────────────────────────────────────

func TestConfirmResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("valid token replaces the password", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			ConfirmPasswordReset(gomock.Any(), "reset-token", "brand-new-pass").
			Return(nil)

		w := doRequest(t, h.Init(), http.MethodPost, "/reset-password/confirm", models.ResetPasswordConfirmRequest{
			Token:       "reset-token",
			NewPassword: "brand-new-pass",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "valid", decodeBody[models.StatusResponse](t, w).Status)
	})

	t.Run("expired token answers 401", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			ConfirmPasswordReset(gomock.Any(), "stale-token", "brand-new-pass").
			Return(service.ErrTokenIsExpiredOrInvalid)

		w := doRequest(t, h.Init(), http.MethodPost, "/reset-password/confirm", models.ResetPasswordConfirmRequest{
			Token:       "stale-token",
			NewPassword: "brand-new-pass",
		})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Reset link is invalid or has expired.", decodeBody[models.ErrorResponse](t, w).Detail)
	})

	t.Run("empty password answers 400", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)

		mocks.auth.EXPECT().
			ConfirmPasswordReset(gomock.Any(), "reset-token", "").
			Return(service.ErrInvalidDataProvided)

		w := doRequest(t, h.Init(), http.MethodPost, "/reset-password/confirm", models.ResetPasswordConfirmRequest{
			Token: "reset-token",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// ── getUserInfo ─────────────────────────────────────────────────────────────

func TestGetUserInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the profile projection", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.auth.EXPECT().
			GetUser(gomock.Any(), int64(7)).
			Return(models.User{
				UserID:    7,
				Username:  "cure53",
				Email:     "cure53@example.com",
				CreatedAt: time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC),
			}, nil)

		w := doRequest(t, h.Init(), http.MethodGet, "/getUserInfo", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		profile := decodeBody[models.Profile](t, w)
		assert.Equal(t, "cure53", profile.Username)
		assert.Equal(t, "cure53@example.com", profile.Email)
		assert.Equal(t, "2025-03-14", profile.Joined)
	})

	t.Run("without a session answers 401", func(t *testing.T) {
		h, _ := newTestHandler(ctrl)

		w := doRequest(t, h.Init(), http.MethodGet, "/getUserInfo", nil)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authenticated", decodeBody[models.ErrorResponse](t, w).Detail)
	})
}
