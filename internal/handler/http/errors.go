// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by handlers for malformed requests. Callers can
// match against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrIDMismatch is returned when the id in the request body differs from
	// the id in the URL.
	ErrIDMismatch = errors.New("id in body does not match id in URL")

	// ErrNoSyncRunning is returned when a cancellation is requested for a
	// vault that is not syncing.
	ErrNoSyncRunning = errors.New("no sync running for vault")
)
