// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import "errors"

var (
	// ErrUnknownProviderType is returned when no provider is registered for
	// a vault's provider type.
	ErrUnknownProviderType = errors.New("unknown provider type")
	// ErrInvalidVault is returned when a vault configuration fails validation.
	ErrInvalidVault = errors.New("invalid vault configuration")
	// ErrNoteNotFound is returned when a note does not exist in the vault.
	ErrNoteNotFound = errors.New("note not found in vault")
	// ErrMalformedNote is returned when a vault file cannot be parsed.
	ErrMalformedNote = errors.New("malformed note")
)

// HTTP vault errors.
var (
	ErrBadRequest          = errors.New("vault server rejected the request")
	ErrUnauthorized        = errors.New("vault server unauthorized")
	ErrForbidden           = errors.New("vault server forbidden")
	ErrInternalServerError = errors.New("vault server internal error")
	ErrBadGateway          = errors.New("vault server bad gateway")
)
