package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/internal/utils"
	"github.com/futuristic/perceptronx/models"
)

func (h *Handler) listTherapists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	therapists, err := h.services.TherapistService.List(ctx)
	if err != nil {
		log.Err(err).Msg("therapist listing failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if therapists == nil {
		therapists = []models.TherapistSummary{}
	}

	_, _ = utils.WriteJSON(w, therapists, http.StatusOK)
}

func (h *Handler) getTherapist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := therapistIDParam(r)
	if err != nil {
		writeError(w, "invalid therapist id", http.StatusBadRequest)
		return
	}

	therapist, err := h.services.TherapistService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTherapistNotFound) {
			writeError(w, "Therapist not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int("id", id).Msg("therapist lookup failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, therapist, http.StatusOK)
}

func (h *Handler) getAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := therapistIDParam(r)
	if err != nil {
		writeError(w, "invalid therapist id", http.StatusBadRequest)
		return
	}

	slots, err := h.services.TherapistService.Availability(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTherapistNotFound) {
			writeError(w, "Therapist not found", http.StatusNotFound)
			return
		}
		log.Err(err).Int("id", id).Msg("availability lookup failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if slots == nil {
		slots = []models.TimeSlot{}
	}

	_, _ = utils.WriteJSON(w, slots, http.StatusOK)
}

func (h *Handler) rateTherapist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := therapistIDParam(r)
	if err != nil {
		writeError(w, "invalid therapist id", http.StatusBadRequest)
		return
	}

	var req models.RatingRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err = h.services.TherapistService.Rate(ctx, id, req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "Rating must be between 1 and 5", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrTherapistNotFound):
			writeError(w, "Therapist not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Int("id", id).Msg("rating submission failed")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.SubmissionResponse{
		Status:  "success",
		Message: "Thank you for your feedback!",
	}, http.StatusOK)
}

func therapistIDParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}
