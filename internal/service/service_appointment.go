package service

import (
	"context"
	"fmt"
	"time"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/internal/store"
	"github.com/futuristic/perceptronx/models"
)

// appointmentService accepts appointment requests. Accepting a request is a
// two-step write: reserve the slot so no other patient can claim it, then
// persist the appointment record. A failed second step releases the
// reservation.
type appointmentService struct {
	appointmentRepository store.AppointmentRepository
	therapistRepository   store.TherapistRepository
	logger                *logger.Logger
}

// NewAppointmentService constructs an AppointmentService over the given
// repositories.
func NewAppointmentService(appointmentRepository store.AppointmentRepository, therapistRepository store.TherapistRepository, logger *logger.Logger) AppointmentService {
	return &appointmentService{
		appointmentRepository: appointmentRepository,
		therapistRepository:   therapistRepository,
		logger:                logger,
	}
}

// Request validates the payload, checks the therapist accepts new patients,
// reserves the slot and stores the appointment as pending.
//
// Returns:
//   - ErrInvalidDataProvided when therapist, date or time is missing.
//   - store.ErrTherapistNotFound for an unknown therapist.
//   - ErrNotAcceptingPatients when the practice is closed to new patients.
//   - store.ErrSlotUnavailable when the slot is already taken.
func (s *appointmentService) Request(ctx context.Context, userID int64, req models.AppointmentRequest) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	if req.TherapistID <= 0 || req.Date == "" || req.Time == "" {
		log.Error().Int("therapist_id", req.TherapistID).Msg("incomplete appointment request")
		return models.Appointment{}, ErrInvalidDataProvided
	}

	therapist, err := s.therapistRepository.GetTherapist(ctx, req.TherapistID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("therapist lookup failed: %w", err)
	}
	if !therapist.AcceptingNewPatients {
		return models.Appointment{}, ErrNotAcceptingPatients
	}

	if err := s.therapistRepository.ReserveSlot(ctx, req.TherapistID, req.Date, req.Time); err != nil {
		return models.Appointment{}, fmt.Errorf("slot reservation failed: %w", err)
	}

	appointment, err := s.appointmentRepository.CreateAppointment(ctx, userID, req)
	if err != nil {
		log.Err(err).Int("therapist_id", req.TherapistID).Msg("appointment creation failed after slot reservation")

		// Give the slot back so the failed request does not leave it
		// permanently taken with no appointment record.
		if releaseErr := s.therapistRepository.ReleaseSlot(ctx, req.TherapistID, req.Date, req.Time); releaseErr != nil {
			log.Err(releaseErr).Int("therapist_id", req.TherapistID).Msg("slot release after failed creation also failed")
		}
		return models.Appointment{}, fmt.Errorf("appointment creation failed: %w", err)
	}

	return appointment, nil
}

// ListByUser returns the user's appointments, newest first.
func (s *appointmentService) ListByUser(ctx context.Context, userID int64) ([]models.Appointment, error) {
	appointments, err := s.appointmentRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("appointment listing failed: %w", err)
	}

	return appointments, nil
}

// nowDateString formats today's date the way the directory displays review
// dates.
func nowDateString() string {
	return time.Now().UTC().Format("2006-01-02")
}
