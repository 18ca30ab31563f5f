// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/provider"
	"github.com/MKhiriev/go-note-sync/models"
)

// SyncCoordinator drives note synchronisation between the local store and
// the vaults. Vault-level failures are returned as *SyncError; per-note
// failures are recorded in the sync state and the retry queue instead.
type SyncCoordinator interface {
	// SyncVault runs a full pass for the vault according to its sync mode:
	// push, pull and, for bidirectional vaults, conflict resolution.
	// A DISABLED vault returns an empty result without touching its provider.
	// Returns ErrSyncAlreadyRunning if the vault is already being synced.
	SyncVault(ctx context.Context, vaultID string) (models.SyncResult, error)

	// SyncNote pushes a single note to its vault and records the outcome.
	// It returns ErrSyncModeExcludesPush for a vault that does not push,
	// ErrManualResolutionRequired for a note in CONFLICT and
	// ErrSyncAlreadyRunning while the vault is being synced.
	SyncNote(ctx context.Context, noteID string) error

	// PushChanges uploads the vault's pending notes and returns how many were uploaded.
	// Like the other stage operations it returns ErrSyncAlreadyRunning while
	// the vault is being synced, and CancelSync stops it.
	PushChanges(ctx context.Context, vaultID string) (int, error)

	// PullChanges downloads the vault's changed notes and returns how many were downloaded.
	PullChanges(ctx context.Context, vaultID string) (int, error)

	// ResolveConflicts applies the vault's conflict strategy to every note in
	// CONFLICT and returns how many were resolved.
	ResolveConflicts(ctx context.Context, vaultID string) (int, error)

	// ForceResync rebuilds the vault's sync state from the local notes and
	// then runs SyncVault.
	ForceResync(ctx context.Context, vaultID string) (models.SyncResult, error)

	// GetSyncProgress returns the synced percentage of the vault's tracked notes.
	GetSyncProgress(ctx context.Context, vaultID string) (int, error)

	// CancelSync cancels the running sync of the vault. It reports whether
	// a sync was running.
	CancelSync(vaultID string) bool

	// SyncAll syncs every vault concurrently. A failing vault never stops the others.
	SyncAll(ctx context.Context) (map[string]models.SyncResult, error)

	// RetryFailed pushes every note whose retry backoff elapsed and returns
	// how many succeeded. Items of notes that can no longer be pushed are
	// dropped from the queue; items of vaults being synced are kept.
	RetryFailed(ctx context.Context) (int, error)

	// TrackLocalChange stores a locally edited note and queues it for upload.
	TrackLocalChange(ctx context.Context, note models.Note) error

	// ListSyncStates returns the vault's sync states, optionally filtered by status.
	ListSyncStates(ctx context.Context, vaultID string, status models.SyncStatus) ([]models.SyncState, error)

	// ForgetSynced deletes the SYNCED rows of the vault and returns how many were removed.
	ForgetSynced(ctx context.Context, vaultID string) (int64, error)

	// ResetErrors resets the retry counters of the vault's ERROR rows.
	ResetErrors(ctx context.Context, vaultID string) (int64, error)
}

// ConflictResolver reconciles a local and a remote version of the same note.
type ConflictResolver interface {
	// Resolve picks a resolution according to strategy. It never fails.
	Resolve(local, remote models.Note, strategy models.ConflictStrategy) models.ConflictResolution

	// TryMerge attempts an automatic merge and reports whether it succeeded.
	TryMerge(local, remote models.Note) (models.Note, bool)
}

// RetryService keeps the retry queue of notes whose sync failed.
type RetryService interface {
	// RecordFailedSync creates or advances the queue item of the note and
	// returns its new state.
	RecordFailedSync(ctx context.Context, noteID, vaultID string, cause error) (models.RetryQueueItem, error)

	// RecordSuccessfulSync removes the note from the queue.
	RecordSuccessfulSync(ctx context.Context, noteID string) error

	// ReadyForRetry returns the items whose backoff elapsed and that did not
	// exceed the retry limit.
	ReadyForRetry(ctx context.Context) ([]models.RetryQueueItem, error)

	// Pending returns the queue items of a vault.
	Pending(ctx context.Context, vaultID string) ([]models.RetryQueueItem, error)

	// CleanupExceeded drops the items that reached the retry limit.
	CleanupExceeded(ctx context.Context) (int64, error)
}

// VaultService manages vault configuration.
type VaultService interface {
	List(ctx context.Context) ([]models.Vault, error)
	Get(ctx context.Context, vaultID string) (models.Vault, error)

	// Save validates the vault against its provider and stores it.
	Save(ctx context.Context, vault models.Vault) (models.Vault, error)
}

// SyncJob is a background worker that periodically syncs every vault and
// retries failed notes.
type SyncJob interface {
	// Start launches the background goroutine. It runs every interval,
	// defaulting to 5 minutes if interval is zero or negative. A previously
	// running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// ProviderFactory resolves the storage provider of a vault.
type ProviderFactory interface {
	ForVault(vault models.Vault) (provider.StorageProvider, error)
}
