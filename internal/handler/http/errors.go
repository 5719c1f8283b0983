// Copyright 2026 The PerceptronX Authors
// SPDX-License-Identifier: MIT

package http

import "errors"

// Sentinel errors used by the session middleware when resolving the
// session_id cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the incoming request carries no
	// session_id cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrSessionRejected is returned when a session_id cookie is present
	// but the session store does not recognise its value.
	ErrSessionRejected = errors.New("session rejected")
)
