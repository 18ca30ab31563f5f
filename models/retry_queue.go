// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaxRetries is the number of failed attempts after which a note is no
// longer retried automatically.
const MaxRetries = 5

// initialRetryDelay is the delay before the first retry of a new queue item.
const initialRetryDelay = 60 * time.Second

// backoffMinutes is indexed by retry count; counts past the end use the last value.
var backoffMinutes = []int{1, 1, 5, 15, 60}

// RetryQueueItem is the backoff bookkeeping of a note whose sync failed.
type RetryQueueItem struct {
	NoteID        string    `json:"note_id"`
	VaultID       string    `json:"vault_id"`
	RetryCount    int       `json:"retry_count"`
	LastAttemptAt time.Time `json:"last_attempt_at"`
	NextRetryAt   time.Time `json:"next_retry_at"`
	ErrorMessage  *string   `json:"error_message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewRetryQueueItem creates the queue item for a first failure observed at now.
func NewRetryQueueItem(noteID, vaultID, errorMessage string, now time.Time) RetryQueueItem {
	item := RetryQueueItem{
		NoteID:        noteID,
		VaultID:       vaultID,
		RetryCount:    0,
		LastAttemptAt: now,
		NextRetryAt:   now.Add(initialRetryDelay),
		CreatedAt:     now,
	}
	if errorMessage != "" {
		item.ErrorMessage = &errorMessage
	}
	return item
}

// NextRetry returns the item advanced by one failed attempt at now.
// An empty errorMessage keeps the previous message.
func (r RetryQueueItem) NextRetry(errorMessage string, now time.Time) RetryQueueItem {
	next := r
	next.RetryCount++
	next.LastAttemptAt = now
	next.NextRetryAt = now.Add(time.Duration(CalculateBackoff(next.RetryCount)) * time.Minute)
	if errorMessage != "" {
		next.ErrorMessage = &errorMessage
	}
	return next
}

// HasExceededMaxRetries reports whether automatic retries should stop.
func (r RetryQueueItem) HasExceededMaxRetries() bool {
	return r.RetryCount >= MaxRetries
}

// IsReadyForRetry reports whether the backoff delay has elapsed at now.
func (r RetryQueueItem) IsReadyForRetry(now time.Time) bool {
	return !now.Before(r.NextRetryAt)
}

// CalculateBackoff returns the delay in minutes after the given retry count:
// 1, 5, 15, 60 and then 60 for every further attempt.
func CalculateBackoff(retryCount int) int {
	if retryCount < 1 {
		return backoffMinutes[0]
	}
	if retryCount >= len(backoffMinutes) {
		return backoffMinutes[len(backoffMinutes)-1]
	}
	return backoffMinutes[retryCount]
}
