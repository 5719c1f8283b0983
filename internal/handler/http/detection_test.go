package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/futuristic/perceptronx/models"
)

func TestListAnnotations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the user's annotations", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.annotations.EXPECT().
			ListByUser(gomock.Any(), int64(7)).
			Return([]models.AnnotationItem{
				{
					ID:        "ann-1",
					UserID:    "7",
					ModelUsed: "yolov8n",
					Detections: []models.Detection{
						{Label: "dog", Confidence: 0.91, Box: []float64{10, 20, 110, 220}},
					},
				},
			}, nil)

		w := doRequest(t, h.InitDetection(), http.MethodGet, "/", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[models.AnnotationResponse](t, w)
		require.Len(t, resp.Annotations, 1)
		assert.Empty(t, resp.Message)
		assert.Equal(t, "dog", resp.Annotations[0].Detections[0].Label)
	})

	t.Run("empty account answers with a notice", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.annotations.EXPECT().
			ListByUser(gomock.Any(), int64(7)).
			Return(nil, nil)

		w := doRequest(t, h.InitDetection(), http.MethodGet, "/", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[models.AnnotationResponse](t, w)
		assert.Nil(t, resp.Annotations)
		assert.Equal(t, "no annotations found for user", resp.Message)
	})

	t.Run("requires authentication", func(t *testing.T) {
		h, _ := newTestHandler(ctrl)

		w := doRequest(t, h.InitDetection(), http.MethodGet, "/", nil)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authenticated", decodeBody[models.ErrorResponse](t, w).Detail)
	})

	t.Run("storage failure answers 500", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.annotations.EXPECT().
			ListByUser(gomock.Any(), int64(7)).
			Return(nil, errors.New("mongo: no reachable servers"))

		w := doRequest(t, h.InitDetection(), http.MethodGet, "/", nil, sessionCookie())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
