package http

import (
	"context"
	"net/http"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/utils"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It resolves the session_id cookie against the session store and, on
// success, stores the session owner's user ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized and a `{detail}` body
// when the cookie is absent ([ErrNoSessionCookie]) or when the store does
// not recognise its value ([ErrSessionRejected]). Expired sessions fall in
// the second case: the store evicts them on lookup.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		session, err := h.findSession(r)
		if err != nil {
			log.Warn().Err(err).Msg("unauthenticated request")
			writeError(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		// Downstream handlers read the user ID from the context instead
		// of re-resolving the cookie.
		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, session.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
