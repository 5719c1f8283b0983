package store

import (
	"context"
	"fmt"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/models"
)

// AppointmentStatusPending is the initial state of every stored request.
// Confirmation happens out of band (practice staff reviews the request),
// so the API never transitions this value itself.
const AppointmentStatusPending = "pending"

type appointmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAppointmentRepository constructs an [AppointmentRepository] backed by
// the provided database connection and logger.
func NewAppointmentRepository(db *DB, logger *logger.Logger) AppointmentRepository {
	logger.Debug().Msg("creating appointment repository")
	return &appointmentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAppointment persists the request as a pending appointment owned by
// userID and returns the stored record.
func (r *appointmentRepository) CreateAppointment(ctx context.Context, userID int64, req models.AppointmentRequest) (models.Appointment, error) {
	log := logger.FromContext(ctx)

	appointment := models.Appointment{
		UserID:      userID,
		TherapistID: req.TherapistID,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Notes:       req.Notes,
		Status:      AppointmentStatusPending,
		CreatedAt:   nowUTC(),
	}

	row := r.db.QueryRowContext(ctx, createAppointment,
		userID, req.TherapistID, req.Date, req.Time, req.Type,
		req.Notes, req.InsuranceProvider, req.InsuranceMemberID,
		appointment.Status, appointment.CreatedAt)
	if err := row.Scan(&appointment.ID); err != nil {
		log.Err(err).Str("func", "*appointmentRepository.CreateAppointment").Msg("error: appointment insert failed")
		return models.Appointment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return appointment, nil
}

// ListByUser returns the user's appointments, newest first.
func (r *appointmentRepository) ListByUser(ctx context.Context, userID int64) ([]models.Appointment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAppointmentsByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*appointmentRepository.ListByUser").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var appointment models.Appointment
		if err := rows.Scan(&appointment.ID, &appointment.UserID, &appointment.TherapistID,
			&appointment.Date, &appointment.Time, &appointment.Type,
			&appointment.Notes, &appointment.Status, &appointment.CreatedAt); err != nil {
			log.Err(err).Str("func", "*appointmentRepository.ListByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, rows.Err()
}
