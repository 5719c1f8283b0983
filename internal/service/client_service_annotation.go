package service

import (
	"context"

	"github.com/futuristic/perceptronx/internal/adapter"
	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/models"
)

type clientAnnotationService struct {
	adapter adapter.ResourceClient
	logger  *logger.Logger
}

func NewClientAnnotationService(resourceClient adapter.ResourceClient, logger *logger.Logger) ClientAnnotationService {
	return &clientAnnotationService{
		adapter: resourceClient,
		logger:  logger,
	}
}

// List fetches detection results. The detection service answers an empty
// account with a notice instead of an empty list; the notice is passed
// through for the screen to render.
func (s *clientAnnotationService) List(ctx context.Context) ([]models.AnnotationItem, string, error) {
	items, notice, err := s.adapter.ListAnnotations(ctx)
	if err != nil {
		return nil, "", mapAdapterError(err)
	}

	return items, notice, nil
}
