// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncStatus is the synchronisation status of a single note.
type SyncStatus string

const (
	SyncStatusPendingUpload   SyncStatus = "PENDING_UPLOAD"
	SyncStatusPendingDownload SyncStatus = "PENDING_DOWNLOAD"
	SyncStatusSynced          SyncStatus = "SYNCED"
	SyncStatusConflict        SyncStatus = "CONFLICT"
	SyncStatusError           SyncStatus = "ERROR"
	SyncStatusNeverSynced     SyncStatus = "NEVER_SYNCED"
)

// Valid reports whether s is one of the known statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case SyncStatusPendingUpload,
		SyncStatusPendingDownload,
		SyncStatusSynced,
		SyncStatusConflict,
		SyncStatusError,
		SyncStatusNeverSynced:
		return true
	}
	return false
}

// SyncState is the per-note synchronisation bookkeeping. There is exactly one
// record per note; a note belongs to a single vault.
type SyncState struct {
	// NoteID is the primary key.
	NoteID string `json:"note_id"`

	// VaultID is the vault the note is synchronised with.
	VaultID string `json:"vault_id"`

	Status SyncStatus `json:"status"`

	// LocalModifiedAt is the local note's last modification time.
	LocalModifiedAt time.Time `json:"local_modified_at"`

	// RemoteModifiedAt is the vault copy's last known modification time.
	RemoteModifiedAt *time.Time `json:"remote_modified_at,omitempty"`

	// LastSyncedAt is the note timestamp both sides agreed on at the last
	// successful sync.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`

	// RemotePath is the provider-specific location of the vault copy.
	RemotePath *string `json:"remote_path,omitempty"`

	// RetryCount counts consecutive failed pushes. It gates push eligibility
	// independently of the retry queue.
	RetryCount int `json:"retry_count"`

	ErrorMessage *string `json:"error_message,omitempty"`
}

// HasConflict reports whether both sides changed since the last successful sync.
func (s SyncState) HasConflict() bool {
	if s.LastSyncedAt == nil || s.RemoteModifiedAt == nil {
		return false
	}
	return s.LocalModifiedAt.After(*s.LastSyncedAt) && s.RemoteModifiedAt.After(*s.LastSyncedAt)
}

// NeedsPush reports whether the local copy changed since the last successful sync.
func (s SyncState) NeedsPush() bool {
	return s.LastSyncedAt == nil || s.LocalModifiedAt.After(*s.LastSyncedAt)
}

// NeedsPull reports whether the vault copy changed since the last successful sync.
func (s SyncState) NeedsPull() bool {
	if s.RemoteModifiedAt == nil {
		return false
	}
	return s.LastSyncedAt == nil || s.RemoteModifiedAt.After(*s.LastSyncedAt)
}

// MarkSynced records a successful sync at timestamp at.
func (s *SyncState) MarkSynced(at time.Time, remotePath string) {
	s.Status = SyncStatusSynced
	s.LocalModifiedAt = at
	s.LastSyncedAt = &at
	s.RemoteModifiedAt = &at
	if remotePath != "" {
		s.RemotePath = &remotePath
	}
	s.RetryCount = 0
	s.ErrorMessage = nil
}

// MarkError records a failed sync attempt.
func (s *SyncState) MarkError(err error) {
	s.Status = SyncStatusError
	s.RetryCount++
	msg := err.Error()
	s.ErrorMessage = &msg
}

// StatusCounts is the number of sync states per status for a vault.
type StatusCounts map[SyncStatus]int

// Tracked returns the number of notes counted towards sync progress.
func (c StatusCounts) Tracked() int {
	return c[SyncStatusPendingUpload] + c[SyncStatusPendingDownload] + c[SyncStatusSynced]
}

// Progress returns the synced percentage, rounded down. A vault without
// tracked notes is fully synced.
func (c StatusCounts) Progress() int {
	total := c.Tracked()
	if total == 0 {
		return 100
	}
	return 100 * c[SyncStatusSynced] / total
}
