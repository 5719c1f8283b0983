package service

import (
	"context"
	"fmt"

	"github.com/futuristic/perceptronx/internal/adapter"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/validators"
	"github.com/futuristic/perceptronx/models"
)

type clientMessageService struct {
	adapter   adapter.ResourceClient
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientMessageService(resourceClient adapter.ResourceClient, validator validators.Validator, logger *logger.Logger) ClientMessageService {
	return &clientMessageService{
		adapter:   resourceClient,
		validator: validator,
		logger:    logger,
	}
}

// Send validates the message and submits it. Messages are fire-and-forget:
// the only delivery state the client ever sees is the submission status.
func (s *clientMessageService) Send(ctx context.Context, req models.MessageRequest) (string, error) {
	if req.RecipientType == "" {
		req.RecipientType = models.RecipientTypeTherapist
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	submission, err := s.adapter.SendMessage(ctx, req)
	if err != nil {
		return "", mapAdapterError(err)
	}
	if !submission.Accepted() {
		s.logger.Warn().Str("status", submission.Status).Msg("message declined")
		return "", fmt.Errorf("message declined: %s", submission.Message)
	}

	return submission.Message, nil
}
