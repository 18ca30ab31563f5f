// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncStateRepository persists one [models.SyncState] per note.
//
// Methods taking a vaultID treat an empty id as "every vault" where noted.
type SyncStateRepository interface {
	// Get returns the state of a note or [ErrSyncStateNotFound].
	Get(ctx context.Context, noteID string) (models.SyncState, error)
	ListByVault(ctx context.Context, vaultID string) ([]models.SyncState, error)
	ListByStatus(ctx context.Context, status models.SyncStatus) ([]models.SyncState, error)
	ListByVaultAndStatus(ctx context.Context, vaultID string, status models.SyncStatus) ([]models.SyncState, error)
	// ListPendingUpload returns PENDING_UPLOAD rows and ERROR rows whose
	// retry count is below maxRetries.
	ListPendingUpload(ctx context.Context, vaultID string, maxRetries int) ([]models.SyncState, error)
	ListPendingDownload(ctx context.Context, vaultID string) ([]models.SyncState, error)
	ListConflicts(ctx context.Context, vaultID string) ([]models.SyncState, error)
	CountByStatus(ctx context.Context, vaultID string) (models.StatusCounts, error)
	// Upsert inserts or replaces one or more states in a single transaction.
	Upsert(ctx context.Context, states ...models.SyncState) error
	Delete(ctx context.Context, noteID string) error
	DeleteByVault(ctx context.Context, vaultID string) (int64, error)
	// DeleteSynced removes SYNCED rows of a vault, or of every vault when
	// vaultID is empty.
	DeleteSynced(ctx context.Context, vaultID string) (int64, error)
	// ResetRetryCounts zeroes the retry count of ERROR rows of a vault, or of
	// every vault when vaultID is empty.
	ResetRetryCounts(ctx context.Context, vaultID string) (int64, error)
}

// RetryQueueRepository persists the backoff bookkeeping of failed syncs.
type RetryQueueRepository interface {
	// Get returns the queue item of a note or [ErrRetryItemNotFound].
	Get(ctx context.Context, noteID string) (models.RetryQueueItem, error)
	ListAll(ctx context.Context) ([]models.RetryQueueItem, error)
	// ListReady returns items due at now that have not exceeded maxRetries.
	ListReady(ctx context.Context, now time.Time, maxRetries int) ([]models.RetryQueueItem, error)
	ListByVault(ctx context.Context, vaultID string) ([]models.RetryQueueItem, error)
	ListExceeded(ctx context.Context, maxRetries int) ([]models.RetryQueueItem, error)
	Upsert(ctx context.Context, item models.RetryQueueItem) error
	Remove(ctx context.Context, noteID string) error
	// RemoveExceeded deletes every item at or above maxRetries.
	RemoveExceeded(ctx context.Context, maxRetries int) (int64, error)
	Clear(ctx context.Context) error
}

// NoteRepository is the local note store.
type NoteRepository interface {
	// Get returns a note or [ErrNoteNotFound].
	Get(ctx context.Context, noteID string) (models.Note, error)
	ListByVault(ctx context.Context, vaultID string) ([]models.Note, error)
	Upsert(ctx context.Context, note models.Note) error
	Delete(ctx context.Context, noteID string) error
	MarkSynced(ctx context.Context, noteID string, synced bool) error
}

// VaultRepository holds the vault configuration.
type VaultRepository interface {
	// Get returns a vault or [ErrVaultNotFound].
	Get(ctx context.Context, vaultID string) (models.Vault, error)
	List(ctx context.Context) ([]models.Vault, error)
	Upsert(ctx context.Context, vault models.Vault) error
	UpdateLastSynced(ctx context.Context, vaultID string, at time.Time) error
}
