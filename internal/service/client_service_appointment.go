package service

import (
	"context"
	"fmt"

	"github.com/futuristic/perceptronx/internal/adapter"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/validators"
	"github.com/futuristic/perceptronx/models"
)

type clientAppointmentService struct {
	adapter   adapter.ResourceClient
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAppointmentService(resourceClient adapter.ResourceClient, validator validators.Validator, logger *logger.Logger) ClientAppointmentService {
	return &clientAppointmentService{
		adapter:   resourceClient,
		validator: validator,
		logger:    logger,
	}
}

// Request validates the form and submits it. A validation failure is
// returned as-is for inline display and never reaches the network. On
// success the server's confirmation message is returned for the screen.
func (s *clientAppointmentService) Request(ctx context.Context, req models.AppointmentRequest) (string, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	submission, err := s.adapter.RequestAppointment(ctx, req)
	if err != nil {
		return "", mapAdapterError(err)
	}
	if !submission.Accepted() {
		s.logger.Warn().Str("status", submission.Status).Msg("appointment request declined")
		return "", fmt.Errorf("appointment request declined: %s", submission.Message)
	}

	return submission.Message, nil
}

func (s *clientAppointmentService) History(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.adapter.ListAppointments(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return appointments, nil
}
