package store

import (
	"context"
	"fmt"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/models"
)

type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists a message from senderID and returns the stored
// record.
func (r *messageRepository) CreateMessage(ctx context.Context, senderID int64, req models.MessageRequest) (models.Message, error) {
	log := logger.FromContext(ctx)

	message := models.Message{
		SenderID:      senderID,
		RecipientID:   req.RecipientID,
		RecipientType: req.RecipientType,
		Subject:       req.Subject,
		Content:       req.Content,
		CreatedAt:     nowUTC(),
	}

	row := r.db.QueryRowContext(ctx, createMessage,
		senderID, req.RecipientID, req.RecipientType, req.Subject, req.Content, message.CreatedAt)
	if err := row.Scan(&message.ID); err != nil {
		log.Err(err).Str("func", "*messageRepository.CreateMessage").Msg("error: message insert failed")
		return models.Message{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return message, nil
}
