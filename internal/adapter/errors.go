package adapter

import "errors"

// Sentinel errors surfaced by the transport layer. Exactly one of these
// kinds wraps every failure an API call can produce, so the UI layer never
// sees a raw transport exception.
var (
	// ErrNetwork means no response was received at all (DNS, dial,
	// timeout, connection reset).
	ErrNetwork = errors.New("network error")
	// ErrUnauthorized means the session is absent, expired, or rejected.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the requested resource id is unknown to the server.
	ErrNotFound = errors.New("not found")
	// ErrServer means the server answered non-2xx with an error detail.
	ErrServer = errors.New("server error")
	// ErrMalformedResponse means a 2xx body did not match the expected
	// shape, including an unrecognised session status literal.
	ErrMalformedResponse = errors.New("malformed response")
)
