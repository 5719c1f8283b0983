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

func TestSendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := models.MessageRequest{
		RecipientID:   3,
		RecipientType: models.RecipientTypeTherapist,
		Subject:       "Scheduling question",
		Content:       "Do you offer evening sessions?",
	}

	t.Run("accepted message answers success", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.messages.EXPECT().
			Send(gomock.Any(), int64(7), payload).
			Return(models.Message{ID: 55}, nil)

		w := doRequest(t, h.Init(), http.MethodPost, "/messages/send", payload, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[models.SubmissionResponse](t, w)
		assert.True(t, resp.Accepted())
		assert.Equal(t, "Message sent.", resp.Message)
	})

	t.Run("unknown recipient is a 200 decline", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.messages.EXPECT().
			Send(gomock.Any(), int64(7), gomock.Any()).
			Return(models.Message{}, store.ErrTherapistNotFound)

		w := doRequest(t, h.Init(), http.MethodPost, "/messages/send", payload, sessionCookie())

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[models.SubmissionResponse](t, w)
		assert.False(t, resp.Accepted())
		assert.Equal(t, "Unknown recipient.", resp.Message)
	})

	t.Run("unsupported recipient type answers 400", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.messages.EXPECT().
			Send(gomock.Any(), int64(7), gomock.Any()).
			Return(models.Message{}, service.ErrUnknownRecipientType)

		w := doRequest(t, h.Init(), http.MethodPost, "/messages/send", models.MessageRequest{
			RecipientID:   3,
			RecipientType: "plumber",
			Content:       "hi",
		}, sessionCookie())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty content answers 400", func(t *testing.T) {
		h, mocks := newTestHandler(ctrl)
		mocks.expectSession(7)

		mocks.messages.EXPECT().
			Send(gomock.Any(), int64(7), gomock.Any()).
			Return(models.Message{}, service.ErrInvalidDataProvided)

		w := doRequest(t, h.Init(), http.MethodPost, "/messages/send", models.MessageRequest{
			RecipientID: 3,
		}, sessionCookie())

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
