// Copyright 2026 The PerceptronX Authors
// SPDX-License-Identifier: MIT

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no API listen
// address is configured, leaving no transport to serve. This is treated as
// a fatal misconfiguration and causes the application to fail at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
