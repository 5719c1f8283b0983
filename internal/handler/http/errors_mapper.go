package http

import (
	"errors"
	"net/http"

	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/internal/utils"
	"github.com/futuristic/perceptronx/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotAcceptingPatients:    http.StatusConflict,
	service.ErrUnknownRecipientType:    http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrTherapistNotFound: http.StatusNotFound,
	store.ErrSlotUnavailable:   http.StatusConflict,
	store.ErrSessionNotFound:   http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes the `{detail}` error body the client contract expects
// on every non-2xx response.
func writeError(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}
