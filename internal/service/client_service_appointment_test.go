package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/futuristic/perceptronx/internal/adapter"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/mock"
	"github.com/futuristic/perceptronx/internal/validators"
	"github.com/futuristic/perceptronx/models"
)

func newTestClientAppointmentSvc(t *testing.T, ctrl *gomock.Controller) (*clientAppointmentService, *mock.MockResourceClient) {
	t.Helper()
	mockResource := mock.NewMockResourceClient(ctrl)

	svc := NewClientAppointmentService(mockResource, validators.NewFormValidator(), logger.NewLogger("test")).(*clientAppointmentService)

	return svc, mockResource
}

// ── Request ──────────────────────────────────────────────────────────────────

func TestClientAppointmentService_Request_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockResource := newTestClientAppointmentSvc(t, ctrl)
	ctx := context.Background()

	req := models.AppointmentRequest{TherapistID: 1, Date: "2026-09-01", Time: "9:00 AM"}
	mockResource.EXPECT().RequestAppointment(ctx, req).Return(models.SubmissionResponse{
		Status:  "success",
		Message: "Appointment request submitted. The office will contact you shortly.",
	}, nil)

	message, err := svc.Request(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, message, "submitted")
}

func TestClientAppointmentService_Request_MissingDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientAppointmentSvc(t, ctrl)

	_, err := svc.Request(context.Background(), models.AppointmentRequest{TherapistID: 1, Time: "9:00 AM"})
	assert.ErrorIs(t, err, validators.ErrNoDateSelected)
}

func TestClientAppointmentService_Request_MissingTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientAppointmentSvc(t, ctrl)

	_, err := svc.Request(context.Background(), models.AppointmentRequest{TherapistID: 1, Date: "2026-09-01"})
	assert.ErrorIs(t, err, validators.ErrNoTimeSelected)
}

func TestClientAppointmentService_Request_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockResource := newTestClientAppointmentSvc(t, ctrl)
	ctx := context.Background()

	req := models.AppointmentRequest{TherapistID: 1, Date: "2026-09-01", Time: "9:00 AM"}
	mockResource.EXPECT().RequestAppointment(ctx, req).Return(models.SubmissionResponse{
		Status:  "error",
		Message: "That slot is no longer available.",
	}, nil)

	_, err := svc.Request(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer available")
}

func TestClientAppointmentService_Request_SessionExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockResource := newTestClientAppointmentSvc(t, ctrl)
	ctx := context.Background()

	req := models.AppointmentRequest{TherapistID: 1, Date: "2026-09-01", Time: "9:00 AM"}
	mockResource.EXPECT().RequestAppointment(ctx, req).Return(models.SubmissionResponse{}, adapter.ErrUnauthorized)

	_, err := svc.Request(ctx, req)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── History ──────────────────────────────────────────────────────────────────

func TestClientAppointmentService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockResource := newTestClientAppointmentSvc(t, ctrl)
	ctx := context.Background()

	mockResource.EXPECT().ListAppointments(ctx).Return([]models.Appointment{
		{ID: 2, TherapistID: 1, Status: "pending"},
	}, nil)

	appointments, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
}

// ── Messages ─────────────────────────────────────────────────────────────────

func newTestClientMessageSvc(t *testing.T, ctrl *gomock.Controller) (*clientMessageService, *mock.MockResourceClient) {
	t.Helper()
	mockResource := mock.NewMockResourceClient(ctrl)

	svc := NewClientMessageService(mockResource, validators.NewFormValidator(), logger.NewLogger("test")).(*clientMessageService)

	return svc, mockResource
}

func TestClientMessageService_Send_DefaultsRecipientType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockResource := newTestClientMessageSvc(t, ctrl)
	ctx := context.Background()

	mockResource.EXPECT().SendMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.MessageRequest) (models.SubmissionResponse, error) {
			assert.Equal(t, models.RecipientTypeTherapist, req.RecipientType)
			return models.SubmissionResponse{Status: "success", Message: "Message sent."}, nil
		},
	)

	message, err := svc.Send(ctx, models.MessageRequest{RecipientID: 1, Content: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "Message sent.", message)
}

func TestClientMessageService_Send_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClientMessageSvc(t, ctrl)

	_, err := svc.Send(context.Background(), models.MessageRequest{RecipientID: 1})
	assert.ErrorIs(t, err, validators.ErrEmptyMessage)
}

func TestClientMessageService_Send_Declined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockResource := newTestClientMessageSvc(t, ctrl)
	ctx := context.Background()

	mockResource.EXPECT().SendMessage(ctx, gomock.Any()).Return(models.SubmissionResponse{
		Status:  "error",
		Message: "Unknown recipient.",
	}, nil)

	_, err := svc.Send(ctx, models.MessageRequest{RecipientID: 99, Content: "Hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown recipient")
}

// ── Annotations ──────────────────────────────────────────────────────────────

func TestClientAnnotationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResource := mock.NewMockResourceClient(ctrl)
	svc := NewClientAnnotationService(mockResource, logger.NewLogger("test"))
	ctx := context.Background()

	mockResource.EXPECT().ListAnnotations(ctx).Return([]models.AnnotationItem{
		{ID: "det-1"},
	}, "", nil)

	items, notice, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Empty(t, notice)
}

func TestClientAnnotationService_List_NoticeWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResource := mock.NewMockResourceClient(ctrl)
	svc := NewClientAnnotationService(mockResource, logger.NewLogger("test"))
	ctx := context.Background()

	mockResource.EXPECT().ListAnnotations(ctx).Return(nil, "no annotations found for user", nil)

	items, notice, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, "no annotations found for user", notice)
}

func TestClientAnnotationService_List_ServiceDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResource := mock.NewMockResourceClient(ctrl)
	svc := NewClientAnnotationService(mockResource, logger.NewLogger("test"))
	ctx := context.Background()

	mockResource.EXPECT().ListAnnotations(ctx).Return(nil, "", adapter.ErrNetwork)

	_, _, err := svc.List(ctx)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}
