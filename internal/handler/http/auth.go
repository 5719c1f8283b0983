package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/internal/utils"
	"github.com/futuristic/perceptronx/models"
)

// rememberMeCookieAge is how long the session_id cookie survives in the
// client when the user asked to be remembered. The server-side session for
// a remembered login never expires; the cookie is the limiting factor.
const rememberMeCookieAge = 30 * 24 * time.Hour

func (h *Handler) loginUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongCredentials):
			log.Warn().Str("username", creds.Username).Msg("login rejected")
			writeError(w, "Invalid username or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if err = h.issueSession(w, r, foundUser.UserID, creds.RememberMe); err != nil {
		log.Err(err).Msg("session creation failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: models.SessionValid.String()}, http.StatusOK)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var reg models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: reg.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("username or email already exists")
			writeError(w, "Username or email already exists.", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	// A fresh registration logs the user straight in.
	if err = h.issueSession(w, r, registeredUser.UserID, false); err != nil {
		log.Err(err).Msg("session creation failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: models.SessionValid.String()}, http.StatusOK)
}

// sessionStatus answers the idempotent session check at GET /. It never
// fails: an unknown or absent cookie is an "invalid" status, not an error.
func (h *Handler) sessionStatus(w http.ResponseWriter, r *http.Request) {
	status := models.SessionInvalid
	if session, err := h.findSession(r); err == nil && session.UserID != 0 {
		status = models.SessionValid
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: status.String()}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(models.SessionCookieName); err == nil {
		if err = h.sessions.Delete(r.Context(), cookie.Value); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Msg("session deletion failed")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: models.SessionInvalid.String()}, http.StatusOK)
}

// resetPassword issues a reset token for the given email. The response is
// identical for known and unknown addresses so the endpoint cannot be used
// to probe which accounts exist; the token is delivered out of band.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.CreateResetToken(ctx, req.Email); err != nil {
		log.Debug().Err(err).Msg("reset token was not issued")
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: models.SessionValid.String()}, http.StatusOK)
}

// confirmResetPassword completes the reset flow: it exchanges a valid reset
// token for a new password on the account the token was issued for.
func (h *Handler) confirmResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ConfirmPasswordReset(ctx, req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
			log.Warn().Msg("reset confirmation rejected")
			writeError(w, "Reset link is invalid or has expired.", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during reset confirmation")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: models.SessionValid.String()}, http.StatusOK)
}

func (h *Handler) getUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	foundUser, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user lookup failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.Profile{
		Username: foundUser.Username,
		Email:    foundUser.Email,
		Joined:   foundUser.CreatedAt.Format("2006-01-02"),
	}, http.StatusOK)
}

// issueSession creates a server-side session for userID and sets the
// session_id cookie on the response.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, userID int64, remember bool) error {
	sessionID, err := h.sessions.Create(r.Context(), userID, remember)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	}
	if remember {
		cookie.Expires = time.Now().Add(rememberMeCookieAge)
	}
	http.SetCookie(w, cookie)

	return nil
}

// findSession resolves the session_id cookie against the session store.
func (h *Handler) findSession(r *http.Request) (models.Session, error) {
	cookie, err := r.Cookie(models.SessionCookieName)
	if err != nil {
		return models.Session{}, ErrNoSessionCookie
	}

	session, err := h.sessions.Find(r.Context(), cookie.Value)
	if err != nil {
		return models.Session{}, ErrSessionRejected
	}

	return session, nil
}
