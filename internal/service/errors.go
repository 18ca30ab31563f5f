// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrVaultNotFound        = errors.New("vault not found")
	ErrNoteNotFound         = errors.New("note not found")
	ErrProviderNotAvailable = errors.New("storage provider not available")
	ErrInvalidVaultConfig   = errors.New("invalid vault configuration")
	ErrInvalidNote          = errors.New("invalid note")
	ErrInvalidSyncStatus    = errors.New("invalid sync status")
	ErrSyncModeExcludesPush = errors.New("vault sync mode does not push")

	ErrPushFailed = errors.New("push failed")
	ErrPullFailed = errors.New("pull failed")

	ErrSyncCancelled            = errors.New("sync cancelled")
	ErrSyncAlreadyRunning       = errors.New("sync already running for vault")
	ErrManualResolutionRequired = errors.New("manual conflict resolution required")
)

// ErrorCategory classifies a SyncError by the subsystem that failed.
type ErrorCategory string

const (
	CategoryDatabase   ErrorCategory = "database"
	CategorySync       ErrorCategory = "sync"
	CategoryFilesystem ErrorCategory = "filesystem"
	CategoryValidation ErrorCategory = "validation"
	CategoryNetwork    ErrorCategory = "network"
)

// SyncError is returned by the sync coordinator for vault-level failures.
// Err is usually one of the package sentinels, optionally joined with the
// underlying cause, so callers match it with errors.Is.
type SyncError struct {
	Category ErrorCategory
	Op       string
	Err      error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Category, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func newSyncError(category ErrorCategory, op string, sentinel error, cause error) error {
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return &SyncError{Category: category, Op: op, Err: err}
}

// CategoryOf returns the category of err, or an empty string when err is not
// a SyncError.
func CategoryOf(err error) ErrorCategory {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Category
	}
	return ""
}
