// Copyright 2026 The PerceptronX Authors
// SPDX-License-Identifier: MIT

package tui

import (
	"errors"

	"github.com/futuristic/perceptronx/internal/service"
)

// humanizeError turns the client-service error vocabulary into the wording
// shown in the overlay. Unknown errors pass through verbatim.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrServerUnavailable):
		return "The server is unreachable. Check your connection and try again."
	case errors.Is(err, service.ErrDetectionUnavailable):
		return "The detection service is unreachable right now."
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid username or password."
	case errors.Is(err, service.ErrNotLoggedIn):
		return "Your session has expired. Please log in again."
	case errors.Is(err, service.ErrResourceNotFound):
		return "The requested record was not found."
	default:
		return err.Error()
	}
}
