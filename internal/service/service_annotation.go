package service

import (
	"context"
	"fmt"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/models"
)

type annotationService struct {
	annotationRepository store.AnnotationRepository
	logger               *logger.Logger
}

// NewAnnotationService constructs an AnnotationService over the given
// repository.
func NewAnnotationService(annotationRepository store.AnnotationRepository, logger *logger.Logger) AnnotationService {
	return &annotationService{
		annotationRepository: annotationRepository,
		logger:               logger,
	}
}

// ListByUser returns the detection results owned by userID, newest first.
// An empty result is not an error; the handler turns it into the "no
// annotations" notice.
func (s *annotationService) ListByUser(ctx context.Context, userID int64) ([]models.AnnotationItem, error) {
	items, err := s.annotationRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("annotation listing failed: %w", err)
	}

	return items, nil
}
