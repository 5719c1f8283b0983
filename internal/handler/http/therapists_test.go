package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/models"
)

// ── GET /therapists ─────────────────────────────────────────────────────────

func TestListTherapists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the directory", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.therapists.EXPECT().
			List(gomock.Any()).
			Return([]models.TherapistSummary{
				{ID: 1, Name: "Dr. Sarah Johnson", Specialties: []string{"Anxiety"}},
				{ID: 2, Name: "Dr. Michael Chen", Specialties: []string{"Depression"}},
			}, nil)

		w := doRequest(t, h.Init(), http.MethodGet, "/therapists", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		listing := decodeBody[[]models.TherapistSummary](t, w)
		require.Len(t, listing, 2)
		assert.Equal(t, "Dr. Sarah Johnson", listing[0].Name)
	})

	t.Run("empty directory is a JSON array, not null", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.therapists.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := doRequest(t, h.Init(), http.MethodGet, "/therapists", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("requires authentication", func(t *testing.T) {
		h, _ := newTestHandler(ctrl)

		w := doRequest(t, h.Init(), http.MethodGet, "/therapists", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// ── GET /therapists/{id} ────────────────────────────────────────────────────

func TestGetTherapist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the full snapshot", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.therapists.EXPECT().
			Get(gomock.Any(), 3).
			Return(models.Therapist{
				ID:                   3,
				Name:                 "Dr. Amara Okafor",
				AcceptingNewPatients: true,
			}, nil)

		w := doRequest(t, h.Init(), http.MethodGet, "/therapists/3", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		therapist := decodeBody[models.Therapist](t, w)
		assert.Equal(t, "Dr. Amara Okafor", therapist.Name)
		assert.True(t, therapist.AcceptingNewPatients)
	})

	t.Run("unknown id answers 404", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.therapists.EXPECT().
			Get(gomock.Any(), 99).
			Return(models.Therapist{}, store.ErrTherapistNotFound)

		w := doRequest(t, h.Init(), http.MethodGet, "/therapists/99", nil, sessionCookie())

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Therapist not found", decodeBody[models.ErrorResponse](t, w).Detail)
	})

	t.Run("non-numeric id answers 400", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		w := doRequest(t, h.Init(), http.MethodGet, "/therapists/abc", nil, sessionCookie())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// ── GET /therapists/{id}/availability ───────────────────────────────────────

func TestGetAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the slots in server order", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.therapists.EXPECT().
			Availability(gomock.Any(), 3).
			Return([]models.TimeSlot{
				{ID: 1, Date: "2026-09-01", Time: "09:00", Available: true},
				{ID: 2, Date: "2026-09-01", Time: "10:00", Available: false},
			}, nil)

		w := doRequest(t, h.Init(), http.MethodGet, "/therapists/3/availability", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		slots := decodeBody[[]models.TimeSlot](t, w)
		require.Len(t, slots, 2)
		assert.True(t, slots[0].Available)
		assert.False(t, slots[1].Available)
	})

	t.Run("no slots is an empty array", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.therapists.EXPECT().Availability(gomock.Any(), 3).Return(nil, nil)

		w := doRequest(t, h.Init(), http.MethodGet, "/therapists/3/availability", nil, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

// ── POST /therapists/{id}/rate ──────────────────────────────────────────────

func TestRateTherapist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("accepted rating answers success", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.therapists.EXPECT().
			Rate(gomock.Any(), 3, models.RatingRequest{Rating: 5, Comment: "Wonderful."}).
			Return(nil)

		w := doRequest(t, h.Init(), http.MethodPost, "/therapists/3/rate", models.RatingRequest{
			Rating:  5,
			Comment: "Wonderful.",
		}, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[models.SubmissionResponse](t, w)
		assert.True(t, resp.Accepted())
		assert.Equal(t, "Thank you for your feedback!", resp.Message)
	})

	t.Run("out of range rating answers 400", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.therapists.EXPECT().
			Rate(gomock.Any(), 3, gomock.Any()).
			Return(service.ErrInvalidDataProvided)

		w := doRequest(t, h.Init(), http.MethodPost, "/therapists/3/rate", models.RatingRequest{
			Rating: 11,
		}, sessionCookie())

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Rating must be between 1 and 5", decodeBody[models.ErrorResponse](t, w).Detail)
	})

	t.Run("unknown therapist answers 404", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.therapists.EXPECT().
			Rate(gomock.Any(), 99, gomock.Any()).
			Return(store.ErrTherapistNotFound)

		w := doRequest(t, h.Init(), http.MethodPost, "/therapists/99/rate", models.RatingRequest{
			Rating: 4,
		}, sessionCookie())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
