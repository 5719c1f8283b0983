package models

import "fmt"

// SessionStatus is the two-state session indicator decoded from the literal
// status string contract shared with the server. The wire values "valid" and
// "invalid" are load-bearing: both sides must agree on them verbatim, and any
// other value is rejected at the boundary rather than silently treated as
// logged-out.
type SessionStatus int

const (
	// SessionInvalid means no session is held or the server rejected it.
	SessionInvalid SessionStatus = iota
	// SessionValid means the server recognised the session cookie.
	SessionValid
)

const (
	statusValidLiteral   = "valid"
	statusInvalidLiteral = "invalid"
)

// ParseSessionStatus decodes the wire status literal into a [SessionStatus].
// Unrecognised values are an error so that a contract drift between client
// and server surfaces as a malformed response instead of a silent logout.
func ParseSessionStatus(s string) (SessionStatus, error) {
	switch s {
	case statusValidLiteral:
		return SessionValid, nil
	case statusInvalidLiteral:
		return SessionInvalid, nil
	default:
		return SessionInvalid, fmt.Errorf("unrecognized session status %q", s)
	}
}

// String returns the wire literal for the status.
func (s SessionStatus) String() string {
	if s == SessionValid {
		return statusValidLiteral
	}
	return statusInvalidLiteral
}

// StatusResponse is the `{status}` body returned by the auth endpoints and
// the root status check.
type StatusResponse struct {
	Status string `json:"status"`
}

// SubmissionResponse is the `{status, message}` body returned by write
// endpoints such as POST /appointments/request.
type SubmissionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Accepted reports whether the server acknowledged the submission.
func (r SubmissionResponse) Accepted() bool {
	return r.Status == "success"
}

// ErrorResponse is the `{detail}` body the server attaches to every non-2xx
// response. The client parses it before falling back to a generic message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
