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

func (h *Handler) requestAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.AppointmentService.Request(ctx, userID, req)
	if err != nil {
		// Declined submissions answer 200 with a non-success status so the
		// client can surface the reason inline instead of as a transport
		// failure.
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrTherapistNotFound):
			writeError(w, "Therapist not found", http.StatusNotFound)
			return
		case errors.Is(err, service.ErrNotAcceptingPatients):
			_, _ = utils.WriteJSON(w, models.SubmissionResponse{
				Status:  "error",
				Message: "This therapist is not accepting new patients.",
			}, http.StatusOK)
			return
		case errors.Is(err, store.ErrSlotUnavailable):
			_, _ = utils.WriteJSON(w, models.SubmissionResponse{
				Status:  "error",
				Message: "That slot is no longer available.",
			}, http.StatusOK)
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("appointment request failed")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.SubmissionResponse{
		Status:  "success",
		Message: "Appointment request submitted. The office will contact you shortly.",
	}, http.StatusOK)
}

func (h *Handler) listAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	appointments, err := h.services.AppointmentService.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("appointment listing failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	_, _ = utils.WriteJSON(w, appointments, http.StatusOK)
}
