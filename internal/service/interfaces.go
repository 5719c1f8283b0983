package service

import (
	"context"

	"github.com/futuristic/perceptronx/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the server-side account and session-credential logic.
type AuthService interface {
	// RegisterUser creates a new account. The plain password arrives in
	// user.PasswordHash and is replaced with its bcrypt hash before the
	// record is persisted.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the credentials and returns the matching account.
	// A wrong password and an unknown username both map to
	// [ErrWrongCredentials] so the response does not leak which part
	// failed.
	Login(ctx context.Context, username, password string) (models.User, error)

	// GetUser returns the account with the given id.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// CreateResetToken issues a signed password-reset token for the
	// account registered with email. The token is delivered out of band;
	// the endpoint response never distinguishes known from unknown
	// addresses.
	CreateResetToken(ctx context.Context, email string) (models.Token, error)

	// ConfirmPasswordReset validates the reset token and replaces the
	// password of the account it was issued for. An invalid or expired
	// token yields [ErrTokenIsExpiredOrInvalid].
	ConfirmPasswordReset(ctx context.Context, tokenString, newPassword string) error
}

// TherapistService serves the therapist directory.
type TherapistService interface {
	List(ctx context.Context) ([]models.TherapistSummary, error)
	Get(ctx context.Context, id int) (models.Therapist, error)

	// Availability returns the therapist's open slots grouped in wire
	// order (by date, then time). Slots already taken are included with
	// IsAvailable=false so the client can grey them out.
	Availability(ctx context.Context, id int) ([]models.TimeSlot, error)

	// Rate records a patient rating for the therapist.
	Rate(ctx context.Context, id int, req models.RatingRequest) error
}

// AppointmentService accepts and lists appointment requests.
type AppointmentService interface {
	// Request validates the payload, reserves the requested slot and
	// stores the appointment as pending.
	Request(ctx context.Context, userID int64, req models.AppointmentRequest) (models.Appointment, error)

	// ListByUser returns the user's appointments, newest first.
	ListByUser(ctx context.Context, userID int64) ([]models.Appointment, error)
}

// MessageService accepts messages addressed to therapists.
type MessageService interface {
	Send(ctx context.Context, senderID int64, req models.MessageRequest) (models.Message, error)
}

// AnnotationService serves detection results to their owner.
type AnnotationService interface {
	ListByUser(ctx context.Context, userID int64) ([]models.AnnotationItem, error)
}
