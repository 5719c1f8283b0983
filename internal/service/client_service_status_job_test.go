package service_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/futuristic/perceptronx/internal/service"
	"github.com/futuristic/perceptronx/internal/service/mock"
	"github.com/futuristic/perceptronx/models"
)

func TestClientStatusJob_PeriodicCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock.NewMockClientAuthService(ctrl)
	job := service.NewClientStatusJob(mockAuth)

	checked := make(chan struct{}, 10)
	mockAuth.EXPECT().Status(gomock.Any()).DoAndReturn(
		func(context.Context) (models.SessionStatus, error) {
			select {
			case checked <- struct{}{}:
			default:
			}
			return models.SessionValid, nil
		},
	).MinTimes(1)

	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	select {
	case <-checked:
	case <-time.After(2 * time.Second):
		t.Fatal("status was never checked")
	}
}

func TestClientStatusJob_StopBlocksUntilExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock.NewMockClientAuthService(ctrl)
	mockAuth.EXPECT().Status(gomock.Any()).Return(models.SessionValid, nil).AnyTimes()

	job := service.NewClientStatusJob(mockAuth)
	job.Start(context.Background(), time.Millisecond)

	time.Sleep(10 * time.Millisecond)
	job.Stop()

	// After Stop returns, no further Status calls may happen; a second
	// Stop must be a no-op.
	job.Stop()
}

func TestClientStatusJob_RestartReplacesPreviousJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock.NewMockClientAuthService(ctrl)
	mockAuth.EXPECT().Status(gomock.Any()).Return(models.SessionValid, nil).AnyTimes()

	job := service.NewClientStatusJob(mockAuth)
	job.Start(context.Background(), time.Millisecond)
	job.Start(context.Background(), time.Millisecond)
	job.Stop()
}

func TestClientStatusJob_ContextCancelStopsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mock.NewMockClientAuthService(ctrl)
	mockAuth.EXPECT().Status(gomock.Any()).Return(models.SessionInvalid, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job := service.NewClientStatusJob(mockAuth)
	job.Start(ctx, time.Millisecond)

	cancel()
	time.Sleep(10 * time.Millisecond)
	job.Stop()
}
