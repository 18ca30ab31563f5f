// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/provider"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// push uploads the vault's notes in PENDING_UPLOAD, and those in ERROR with
// fewer than MaxPushRetries failed pushes, in query order.
func (s *syncCoordinator) push(ctx context.Context, vault models.Vault, p provider.StorageProvider) (models.SyncResult, error) {
	const op = "PushChanges"
	var res models.SyncResult

	if ctx.Err() != nil {
		return res, s.cancelled(ctx, op)
	}

	pending, err := s.states.ListPendingUpload(ctx, vault.ID, MaxPushRetries)
	if err != nil {
		return res, databaseError(op, err)
	}

	for i, state := range pending {
		if ctx.Err() != nil {
			return res, s.cancelled(ctx, op)
		}

		outcome, _ := s.pushNote(ctx, vault, p, state)
		switch outcome {
		case outcomeDone:
			res.Uploaded++
		case outcomeSkipped:
			res.Skipped++
		case outcomeFailed:
			res.Errors++
		case outcomeCancelled:
			return res, s.cancelled(ctx, op)
		case outcomeConflict:
			// counted from the vault's CONFLICT rows at the end of the pass
		}

		s.report(vault.ID, models.SyncStagePush, i+1, len(pending))
	}

	return res, nil
}

// pushNote uploads one note and records the outcome in its sync state and
// in the retry queue. The returned error is the cause of a failed outcome.
// A note changed on both sides is never uploaded: it is reported as
// outcomeConflict and left to the conflict stage.
func (s *syncCoordinator) pushNote(ctx context.Context, vault models.Vault, p provider.StorageProvider, state models.SyncState) (noteOutcome, error) {
	log := logger.FromContext(ctx)

	if state.Status == models.SyncStatusConflict || state.HasConflict() {
		if state.Status != models.SyncStatusConflict {
			state.Status = models.SyncStatusConflict
			if err := s.states.Upsert(ctx, state); err != nil {
				log.Err(err).Str("func", "syncCoordinator.pushNote").Str("note_id", state.NoteID).Msg("error saving conflict state")
				return outcomeFailed, err
			}
		}
		log.Info().Str("note_id", state.NoteID).Msg("note in conflict, not uploading")
		return outcomeConflict, nil
	}

	note, err := s.notes.Get(ctx, state.NoteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		log.Info().Str("note_id", state.NoteID).Msg("note no longer exists, dropping its sync state")
		if err = s.states.Delete(ctx, state.NoteID); err != nil {
			log.Err(err).Str("func", "syncCoordinator.pushNote").Str("note_id", state.NoteID).Msg("error deleting orphaned sync state")
			return outcomeFailed, err
		}
		if err = s.retries.RecordSuccessfulSync(ctx, state.NoteID); err != nil {
			log.Warn().Err(err).Str("note_id", state.NoteID).Msg("error dropping retry item of orphaned note")
		}
		return outcomeSkipped, nil
	}
	if err != nil {
		log.Err(err).Str("func", "syncCoordinator.pushNote").Str("note_id", state.NoteID).Msg("error loading note")
		s.recordPushFailure(ctx, state, err)
		return outcomeFailed, err
	}

	path, err := p.SaveNote(ctx, note, vault)
	if err != nil {
		if ctx.Err() != nil {
			return outcomeCancelled, err
		}
		s.recordPushFailure(ctx, state, err)
		return outcomeFailed, err
	}

	// the row may have been updated by a local edit while uploading
	current, err := s.states.Get(ctx, note.ID)
	switch {
	case errors.Is(err, store.ErrSyncStateNotFound):
		current = state
	case err != nil:
		log.Err(err).Str("func", "syncCoordinator.pushNote").Str("note_id", note.ID).Msg("error reloading sync state")
		return outcomeFailed, err
	}

	pushedAt := models.NormalizeTime(note.UpdatedAt)
	edited := !current.LocalModifiedAt.Equal(pushedAt)
	if edited {
		// the vault holds the pushed version; the newer edit stays queued
		current.LastSyncedAt = &pushedAt
		current.RemoteModifiedAt = &pushedAt
		if path != "" {
			current.RemotePath = &path
		}
		current.RetryCount = 0
		current.ErrorMessage = nil
		if current.Status != models.SyncStatusConflict {
			current.Status = models.SyncStatusPendingUpload
		}
	} else {
		current.MarkSynced(pushedAt, path)
	}

	if err = s.states.Upsert(ctx, current); err != nil {
		log.Err(err).Str("func", "syncCoordinator.pushNote").Str("note_id", note.ID).Msg("error saving sync state")
		return outcomeFailed, err
	}
	if !edited {
		if err = s.notes.MarkSynced(ctx, note.ID, true); err != nil {
			log.Warn().Err(err).Str("note_id", note.ID).Msg("error flagging note as synced")
		}
	}
	if err = s.retries.RecordSuccessfulSync(ctx, note.ID); err != nil {
		log.Warn().Err(err).Str("note_id", note.ID).Msg("error removing retry item")
	}

	log.Debug().Str("note_id", note.ID).Str("path", path).Bool("edited_during_upload", edited).Msg("note uploaded")
	return outcomeDone, nil
}

func (s *syncCoordinator) recordPushFailure(ctx context.Context, state models.SyncState, cause error) {
	log := logger.FromContext(ctx)

	state.MarkError(cause)
	if err := s.states.Upsert(ctx, state); err != nil {
		log.Err(err).Str("func", "syncCoordinator.recordPushFailure").Str("note_id", state.NoteID).Msg("error saving failed sync state")
	}

	item, err := s.retries.RecordFailedSync(ctx, state.NoteID, state.VaultID, cause)
	if err != nil {
		log.Err(err).Str("func", "syncCoordinator.recordPushFailure").Str("note_id", state.NoteID).Msg("error queueing note for retry")
		return
	}

	log.Warn().
		Err(cause).
		Str("note_id", state.NoteID).
		Int("retry_count", state.RetryCount).
		Time("next_retry_at", item.NextRetryAt).
		Msg("note push failed")
}
