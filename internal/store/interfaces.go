package store

import (
	"context"
	"time"

	"github.com/futuristic/perceptronx/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -mock_names SessionStore=MockServerSessionStore

// ClientSessionStore holds the session cookie on the client side, one value
// per host. It satisfies the adapter's SessionStore contract; the SQLite
// implementation additionally persists remember-me sessions across client
// restarts.
type ClientSessionStore interface {
	// Get returns the cookie value stored for host, and whether one exists.
	Get(host string) (string, bool)
	// Set stores the cookie value for host; remember requests persistence.
	Set(host string, value string, remember bool) error
	// Clear removes the cookie stored for host, persisted copies included.
	Clear(host string) error
	// Close releases any underlying resources.
	Close() error
}

// SessionStore is the server-side session registry behind the session_id
// cookie. Sessions without remember-me expire after the configured TTL.
type SessionStore interface {
	// Create registers a new session for userID and returns its opaque id.
	Create(ctx context.Context, userID int64, remember bool) (string, error)
	// Find resolves a session id to its record. Expired or unknown ids
	// yield [ErrSessionNotFound].
	Find(ctx context.Context, id string) (models.Session, error)
	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error
}

// UserRepository manages user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. A duplicate username or email yields
	// [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the account with the given username, or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByEmail returns the account registered with email, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the account with the given id, or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdatePassword replaces the stored password hash of the account, or
	// returns [ErrNoUserWasFound] for an unknown id.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// TherapistRepository serves the therapist directory and its time slots.
type TherapistRepository interface {
	// ListTherapists returns the list-view projection of every therapist.
	ListTherapists(ctx context.Context) ([]models.TherapistSummary, error)
	// GetTherapist returns the full snapshot for id, or [ErrTherapistNotFound].
	GetTherapist(ctx context.Context, id int) (models.Therapist, error)
	// ListSlots returns every slot of the therapist ordered by date and time.
	ListSlots(ctx context.Context, therapistID int) ([]models.TimeSlot, error)
	// ReserveSlot marks the matching available slot as taken. Returns
	// [ErrSlotUnavailable] when no such slot is free.
	ReserveSlot(ctx context.Context, therapistID int, date, timeOfDay string) error
	// ReleaseSlot marks the slot available again. Releasing a slot that
	// is already free is a no-op.
	ReleaseSlot(ctx context.Context, therapistID int, date, timeOfDay string) error
	// AddReview stores a review and refreshes the therapist's aggregate
	// rating and review count.
	AddReview(ctx context.Context, therapistID int, review models.Review) error
}

// AppointmentRepository stores accepted appointment requests.
type AppointmentRepository interface {
	// CreateAppointment persists the request as a pending appointment.
	CreateAppointment(ctx context.Context, userID int64, req models.AppointmentRequest) (models.Appointment, error)
	// ListByUser returns the user's appointments, newest first.
	ListByUser(ctx context.Context, userID int64) ([]models.Appointment, error)
}

// MessageRepository stores messages sent to therapists.
type MessageRepository interface {
	// CreateMessage persists the message.
	CreateMessage(ctx context.Context, senderID int64, req models.MessageRequest) (models.Message, error)
}

// AnnotationRepository serves detection results for the detection service.
type AnnotationRepository interface {
	// ListByUser returns all annotation records owned by userID, newest
	// first.
	ListByUser(ctx context.Context, userID int64) ([]models.AnnotationItem, error)
}

// nowUTC returns the current time in UTC; declared here so repositories
// share one clock convention.
func nowUTC() time.Time {
	return time.Now().UTC()
}
