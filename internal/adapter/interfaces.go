// Package adapter provides the transport layer for communicating with the
// PerceptronX API server and the detection service.
//
// The primary abstractions are [SessionClient] for authentication calls and
// [ResourceClient] for typed domain fetches; [APIClient] combines the two.
// The package ships an HTTP/REST implementation built on resty
// ([NewHTTPAPIClient]) that carries the session cookie managed by a
// [SessionStore].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
// Raw transport errors never escape this package unwrapped.
package adapter

import (
	"context"

	"github.com/futuristic/perceptronx/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// SessionStore owns the session cookie carried on every authenticated
// request. One cookie value is stored per host; an implementation may
// persist a remember-me cookie across client restarts.
//
// The store is created by the application's composition root and passed to
// the API client at construction, so no transport code depends on global
// mutable session state.
type SessionStore interface {
	// Get returns the session cookie value stored for host, and whether
	// one is present.
	Get(host string) (string, bool)

	// Set stores the session cookie value for host. When remember is true
	// the implementation should persist the value so it survives a client
	// restart.
	Set(host string, value string, remember bool) error

	// Clear removes the session cookie stored for host, including any
	// persisted copy. Clearing an absent session is not an error.
	Clear(host string) error
}

// SessionClient defines the authentication operations of the PerceptronX
// API. Login and Register establish a session; all other operations of
// [ResourceClient] require one, except a bare Status check.
type SessionClient interface {
	// Login sends credentials to POST /loginUser. On a "valid" status the
	// session_id cookie from the response is saved in the session store,
	// keyed by the API host. An unrecognised status literal is reported as
	// [ErrMalformedResponse] rather than treated as a failed login.
	Login(ctx context.Context, creds models.LoginRequest) (models.SessionStatus, error)

	// Register creates a new account via POST /registerUser and returns
	// the server-reported session status.
	Register(ctx context.Context, reg models.RegisterRequest) (models.SessionStatus, error)

	// Logout posts to POST /logout and clears the stored session cookie.
	// The local session state is cleared even when the server call fails,
	// so the client never believes it is logged in after a logout attempt.
	Logout(ctx context.Context) error

	// Status performs the idempotent session check against GET /. It is
	// safe to call with no session held: the server answers with an
	// "invalid" status instead of an error.
	Status(ctx context.Context) (models.SessionStatus, error)

	// ResetPassword posts the email to POST /reset-password. The call is
	// fire-and-forget: no confirmation entity is returned beyond status.
	ResetPassword(ctx context.Context, email string) error
}

// ResourceClient defines the typed fetch and submit operations against the
// PerceptronX backend. All list-returning operations yield the complete
// result set for a single call; there is no pagination or streaming.
type ResourceClient interface {
	// GetUserInfo fetches the profile of the authenticated user from
	// GET /getUserInfo.
	GetUserInfo(ctx context.Context) (models.Profile, error)

	// ListTherapists fetches the therapist directory from GET /therapists.
	ListTherapists(ctx context.Context) ([]models.TherapistSummary, error)

	// GetTherapist fetches the full detail snapshot from
	// GET /therapists/{id}. A 2xx body that fails the required-field check
	// is reported as [ErrMalformedResponse].
	GetTherapist(ctx context.Context, id int) (models.Therapist, error)

	// GetAvailability fetches bookable slots from
	// GET /therapists/{id}/availability.
	GetAvailability(ctx context.Context, therapistID int) ([]models.TimeSlot, error)

	// RequestAppointment submits an appointment request to
	// POST /appointments/request and returns the server's submission status.
	RequestAppointment(ctx context.Context, req models.AppointmentRequest) (models.SubmissionResponse, error)

	// SendMessage submits a message to POST /messages/send.
	SendMessage(ctx context.Context, req models.MessageRequest) (models.SubmissionResponse, error)

	// RateTherapist submits a rating via POST /therapists/{id}/rate.
	RateTherapist(ctx context.Context, therapistID int, req models.RatingRequest) error

	// ListAppointments fetches the authenticated user's appointments from
	// GET /user/appointments.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// ListAnnotations fetches detection results from the detection
	// service. When the service has nothing to list it answers with a
	// human-readable notice instead of items; the notice is returned as
	// the second value.
	ListAnnotations(ctx context.Context) ([]models.AnnotationItem, string, error)
}

// APIClient combines session management and resource access behind one
// transport. The per-screen state holders depend on this interface only.
type APIClient interface {
	SessionClient
	ResourceClient
}
