package models

import "time"

// Session is the server-side record behind a session_id cookie. The cookie
// value is an opaque UUID; everything else lives in the session store.
// Exactly one session is active per client instance.
type Session struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	RememberMe bool      `json:"remember_me"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionCookieName is the cookie the server sets on login and the client
// resends on every request to the same host.
const SessionCookieName = "session_id"
