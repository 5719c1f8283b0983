// Copyright 2026 The PerceptronX Authors
// SPDX-License-Identifier: MIT

package service

import (
	"errors"

	"github.com/futuristic/perceptronx/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Validation errors never pass through here; they are
// produced before the adapter is called.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrNotLoggedIn

	case errors.Is(err, adapter.ErrNotFound):
		return ErrResourceNotFound

	case errors.Is(err, adapter.ErrNetwork):
		return ErrServerUnavailable
	}

	return err
}
