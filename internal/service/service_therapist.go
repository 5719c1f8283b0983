package service

import (
	"context"
	"fmt"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/models"
)

// therapistService is the concrete implementation of TherapistService. The
// directory is read-mostly: the only write path is patient ratings.
type therapistService struct {
	therapistRepository store.TherapistRepository
	logger              *logger.Logger
}

// NewTherapistService constructs a TherapistService over the given
// repository.
func NewTherapistService(therapistRepository store.TherapistRepository, logger *logger.Logger) TherapistService {
	return &therapistService{
		therapistRepository: therapistRepository,
		logger:              logger,
	}
}

func (s *therapistService) List(ctx context.Context) ([]models.TherapistSummary, error) {
	summaries, err := s.therapistRepository.ListTherapists(ctx)
	if err != nil {
		return nil, fmt.Errorf("therapist listing failed: %w", err)
	}

	return summaries, nil
}

func (s *therapistService) Get(ctx context.Context, id int) (models.Therapist, error) {
	therapist, err := s.therapistRepository.GetTherapist(ctx, id)
	if err != nil {
		return models.Therapist{}, fmt.Errorf("therapist lookup failed: %w", err)
	}

	return therapist, nil
}

// Availability returns the therapist's slots. The therapist must exist;
// an empty slot list is a valid answer for a fully booked practice.
func (s *therapistService) Availability(ctx context.Context, id int) ([]models.TimeSlot, error) {
	if _, err := s.therapistRepository.GetTherapist(ctx, id); err != nil {
		return nil, fmt.Errorf("therapist lookup failed: %w", err)
	}

	slots, err := s.therapistRepository.ListSlots(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("slot listing failed: %w", err)
	}

	return slots, nil
}

// Rate records a patient rating. Ratings are anonymous at this level; the
// handler decides whether to attach a display name.
func (s *therapistService) Rate(ctx context.Context, id int, req models.RatingRequest) error {
	log := logger.FromContext(ctx)

	if req.Rating < 1 || req.Rating > 5 {
		log.Error().Float64("rating", req.Rating).Msg("rating out of range")
		return ErrInvalidDataProvided
	}

	review := models.Review{
		PatientName: "Anonymous",
		Rating:      req.Rating,
		Comment:     req.Comment,
		Date:        nowDateString(),
	}
	if err := s.therapistRepository.AddReview(ctx, id, review); err != nil {
		return fmt.Errorf("recording rating failed: %w", err)
	}

	return nil
}
