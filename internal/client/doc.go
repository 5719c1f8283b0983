// Copyright 2026 The PerceptronX Authors
// SPDX-License-Identifier: MIT

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services, and the background
// session status check into a single process lifecycle.
package client
