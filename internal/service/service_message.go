package service

import (
	"context"
	"fmt"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/models"
)

type messageService struct {
	messageRepository   store.MessageRepository
	therapistRepository store.TherapistRepository
	logger              *logger.Logger
}

// NewMessageService constructs a MessageService over the given repositories.
func NewMessageService(messageRepository store.MessageRepository, therapistRepository store.TherapistRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository:   messageRepository,
		therapistRepository: therapistRepository,
		logger:              logger,
	}
}

// Send validates the message and persists it. The recipient therapist must
// exist; delivery beyond persistence is out of scope.
func (s *messageService) Send(ctx context.Context, senderID int64, req models.MessageRequest) (models.Message, error) {
	log := logger.FromContext(ctx)

	if req.RecipientID <= 0 || req.Content == "" {
		log.Error().Int("recipient_id", req.RecipientID).Msg("incomplete message request")
		return models.Message{}, ErrInvalidDataProvided
	}
	if req.RecipientType != models.RecipientTypeTherapist {
		return models.Message{}, ErrUnknownRecipientType
	}

	if _, err := s.therapistRepository.GetTherapist(ctx, req.RecipientID); err != nil {
		return models.Message{}, fmt.Errorf("recipient lookup failed: %w", err)
	}

	message, err := s.messageRepository.CreateMessage(ctx, senderID, req)
	if err != nil {
		return models.Message{}, fmt.Errorf("message creation failed: %w", err)
	}

	return message, nil
}
