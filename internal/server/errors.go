// Copyright 2026 The PerceptronX Authors
// SPDX-License-Identifier: MIT

package server

import "errors"

var errNoServersAreCreated = errors.New("no servers are created: provide at least one listen address")
