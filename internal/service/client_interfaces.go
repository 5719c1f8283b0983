package service

import (
	"context"
	"time"

	"github.com/futuristic/perceptronx/models"
)

// The client-side mocks live in their own package under this directory so
// that the in-package service tests, which use the adapter and store mocks
// from internal/mock, never pull a package that imports service back in.
//
//go:generate mockgen -source=client_interfaces.go -destination=mock/client_service_mock.go -package=mock

// SessionState is the per-client-instance authentication state machine.
// The zero value is StateUnknown: nothing has been learned from the server
// yet. The only transition into StateLoggedIn is a server response carrying
// a valid session status; everything else lands in StateLoggedOut.
type SessionState int

const (
	StateUnknown SessionState = iota
	StateLoggedIn
	StateLoggedOut
)

// String returns a readable name for logging.
func (s SessionState) String() string {
	switch s {
	case StateLoggedIn:
		return "logged_in"
	case StateLoggedOut:
		return "logged_out"
	default:
		return "unknown"
	}
}

// ClientAuthService drives the authentication flow of the client. It owns
// the session state machine and translates transport errors into the
// business vocabulary the screens render. Form payloads are validated
// before any network call; a validation error never reaches the adapter.
type ClientAuthService interface {
	// Login validates the credentials and performs the login call.
	// Returns ErrInvalidCredentials when the server reports a non-valid
	// status or rejects the credentials.
	Login(ctx context.Context, creds models.LoginRequest) error

	// Register validates the registration form (including the password
	// confirmation, which never travels over the wire) and creates the
	// account. A registration that succeeds without a valid session
	// status is reported as ErrRegisterOnServer.
	Register(ctx context.Context, reg models.RegisterRequest, passwordConfirmation string) error

	// Logout invalidates the session. Local session state is cleared even
	// when the server call fails; the returned error is informational.
	Logout(ctx context.Context) error

	// Status performs the idempotent session check and updates the state
	// machine. Safe to call with no session held.
	Status(ctx context.Context) (models.SessionStatus, error)

	// ResetPassword validates the email and fires the reset request.
	ResetPassword(ctx context.Context, email string) error

	// State returns the current position of the session state machine.
	State() SessionState
}

// DirectoryService is the client-side view of the therapist directory. The
// server returns the full directory in one call; searching and specialty
// filtering happen locally.
type DirectoryService interface {
	// List filters the directory by the free-text query (matched against
	// names, case-insensitive) and specialty. Empty query and empty
	// specialty return the full directory. The directory is fetched at
	// most once and then served from a local cache; filtering always
	// operates on the cached copy.
	List(ctx context.Context, query, specialty string) ([]models.TherapistSummary, error)

	// Invalidate drops the cached directory so the next List refetches.
	Invalidate()

	// Get fetches the full detail snapshot of one therapist.
	Get(ctx context.Context, id int) (models.Therapist, error)

	// Availability fetches the therapist's slots grouped by date, in the
	// server's date order.
	Availability(ctx context.Context, therapistID int) ([]models.DaySchedule, error)

	// Rate validates and submits a rating for the therapist.
	Rate(ctx context.Context, therapistID int, req models.RatingRequest) error

	// Profile fetches the authenticated user's profile.
	Profile(ctx context.Context) (models.Profile, error)
}

// ClientAppointmentService validates and submits appointment requests.
type ClientAppointmentService interface {
	// Request validates the form and submits it. On success the server's
	// human-readable confirmation message is returned.
	Request(ctx context.Context, req models.AppointmentRequest) (string, error)

	// History fetches the user's submitted appointments.
	History(ctx context.Context) ([]models.Appointment, error)
}

// ClientMessageService validates and sends messages to therapists.
type ClientMessageService interface {
	Send(ctx context.Context, req models.MessageRequest) (string, error)
}

// ClientAnnotationService lists detection results from the detection
// service.
type ClientAnnotationService interface {
	// List returns the annotation items, or the service's human-readable
	// notice when there is nothing to list.
	List(ctx context.Context) ([]models.AnnotationItem, string, error)
}

// ClientStatusJob is a background worker that periodically re-checks the
// session against the server, so an expired session is noticed without
// waiting for the next user action.
type ClientStatusJob interface {
	// Start launches the background goroutine. It checks every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
