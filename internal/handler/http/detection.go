package http

import (
	"net/http"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/utils"
	"github.com/futuristic/perceptronx/models"
)

// listAnnotations serves the detection results of the authenticated user.
// An empty account answers with a `{message}` notice instead of an empty
// list; the client renders the notice verbatim.
func (h *Handler) listAnnotations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	items, err := h.services.AnnotationService.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("annotation listing failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if len(items) == 0 {
		_, _ = utils.WriteJSON(w, models.AnnotationResponse{
			Message: "no annotations found for user",
		}, http.StatusOK)
		return
	}

	_, _ = utils.WriteJSON(w, models.AnnotationResponse{Annotations: items}, http.StatusOK)
}
