package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/internal/utils"
	"github.com/futuristic/perceptronx/models"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.MessageService.Send(ctx, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnknownRecipientType):
			writeError(w, "unknown recipient type", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrTherapistNotFound):
			_, _ = utils.WriteJSON(w, models.SubmissionResponse{
				Status:  "error",
				Message: "Unknown recipient.",
			}, http.StatusOK)
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("message submission failed")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.SubmissionResponse{
		Status:  "success",
		Message: "Message sent.",
	}, http.StatusOK)
}
