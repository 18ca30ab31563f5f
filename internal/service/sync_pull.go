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

// pull downloads every vault note that is unknown locally or changed since
// it was last seen. Notes edited on both sides are flagged CONFLICT instead
// of being overwritten.
func (s *syncCoordinator) pull(ctx context.Context, vault models.Vault, p provider.StorageProvider) (models.SyncResult, error) {
	const op = "PullChanges"
	var res models.SyncResult

	if ctx.Err() != nil {
		return res, s.cancelled(ctx, op)
	}

	remote, err := p.ListNotes(ctx, vault)
	if err != nil {
		if ctx.Err() != nil {
			return res, s.cancelled(ctx, op)
		}
		logger.FromContext(ctx).Err(err).Str("func", "syncCoordinator.pull").Msg("error listing vault notes")
		return res, newSyncError(providerCategory(p), op, ErrPullFailed, err)
	}

	listed := make(map[string]struct{}, len(remote))
	for i, meta := range remote {
		if ctx.Err() != nil {
			return res, s.cancelled(ctx, op)
		}
		listed[meta.ID] = struct{}{}

		outcome, _ := s.pullNote(ctx, vault, p, meta)
		switch outcome {
		case outcomeDone:
			res.Downloaded++
		case outcomeSkipped:
			res.Skipped++
		case outcomeFailed:
			res.Errors++
		case outcomeCancelled:
			return res, s.cancelled(ctx, op)
		}

		s.report(vault.ID, models.SyncStagePull, i+1, len(remote))
	}

	if err = s.settleVanishedDownloads(ctx, vault, listed); err != nil {
		return res, databaseError(op, err)
	}

	return res, nil
}

func (s *syncCoordinator) pullNote(ctx context.Context, vault models.Vault, p provider.StorageProvider, meta models.NoteMetadata) (noteOutcome, error) {
	log := logger.FromContext(ctx)
	remoteAt := models.NormalizeTime(meta.ModifiedAt)

	state, err := s.states.Get(ctx, meta.ID)
	tracked := true
	switch {
	case errors.Is(err, store.ErrSyncStateNotFound):
		tracked = false
	case err != nil:
		log.Err(err).Str("func", "syncCoordinator.pullNote").Str("note_id", meta.ID).Msg("error loading sync state")
		return outcomeFailed, err
	}

	if tracked && state.RemoteModifiedAt != nil && !remoteAt.After(*state.RemoteModifiedAt) {
		return outcomeSkipped, nil
	}

	remote, err := p.LoadNote(ctx, meta.ID, vault)
	if err != nil {
		if ctx.Err() != nil {
			return outcomeCancelled, err
		}
		s.recordPullFailure(ctx, vault, meta.ID, state, tracked, err)
		return outcomeFailed, err
	}

	local, err := s.notes.Get(ctx, meta.ID)
	localExists := true
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		localExists = false
	case err != nil:
		log.Err(err).Str("func", "syncCoordinator.pullNote").Str("note_id", meta.ID).Msg("error loading local note")
		return outcomeFailed, err
	}

	if !tracked {
		state = models.SyncState{NoteID: meta.ID, VaultID: vault.ID, Status: models.SyncStatusPendingDownload}
		if localExists {
			state.LocalModifiedAt = models.NormalizeTime(local.UpdatedAt)
		}
	}
	state.RemoteModifiedAt = &remoteAt

	if localExists && state.HasConflict() {
		state.Status = models.SyncStatusConflict
		if meta.Path != "" {
			state.RemotePath = &meta.Path
		}
		if err = s.states.Upsert(ctx, state); err != nil {
			log.Err(err).Str("func", "syncCoordinator.pullNote").Str("note_id", meta.ID).Msg("error saving conflict state")
			return outcomeFailed, err
		}
		log.Info().Str("note_id", meta.ID).Msg("note changed on both sides, conflict recorded")
		return outcomeConflict, nil
	}

	remote.ID = meta.ID
	remote.VaultID = vault.ID
	remote.UpdatedAt = remoteAt
	if remote.CreatedAt.IsZero() {
		remote.CreatedAt = remoteAt
	}
	remote.IsSynced = true

	if err = s.notes.Upsert(ctx, remote); err != nil {
		log.Err(err).Str("func", "syncCoordinator.pullNote").Str("note_id", meta.ID).Msg("error saving downloaded note")
		return outcomeFailed, err
	}

	state.MarkSynced(remoteAt, meta.Path)
	if err = s.states.Upsert(ctx, state); err != nil {
		log.Err(err).Str("func", "syncCoordinator.pullNote").Str("note_id", meta.ID).Msg("error saving sync state")
		return outcomeFailed, err
	}

	log.Debug().Str("note_id", meta.ID).Bool("created", !localExists).Msg("note downloaded")
	return outcomeDone, nil
}

// recordPullFailure keeps the recorded remote timestamp unchanged so the
// next pull retries the download.
func (s *syncCoordinator) recordPullFailure(ctx context.Context, vault models.Vault, noteID string, state models.SyncState, tracked bool, cause error) {
	log := logger.FromContext(ctx)

	if !tracked {
		state = models.SyncState{
			NoteID:  noteID,
			VaultID: vault.ID,
			Status:  models.SyncStatusPendingDownload,
		}
	}
	msg := cause.Error()
	state.ErrorMessage = &msg

	if err := s.states.Upsert(ctx, state); err != nil {
		log.Err(err).Str("func", "syncCoordinator.recordPullFailure").Str("note_id", noteID).Msg("error saving failed download state")
	}
	log.Warn().Err(cause).Str("note_id", noteID).Msg("note download failed")
}

// settleVanishedDownloads handles PENDING_DOWNLOAD rows whose note is no
// longer listed by the vault: a local copy becomes PENDING_UPLOAD, otherwise
// the row is dropped.
func (s *syncCoordinator) settleVanishedDownloads(ctx context.Context, vault models.Vault, listed map[string]struct{}) error {
	log := logger.FromContext(ctx)

	pending, err := s.states.ListPendingDownload(ctx, vault.ID)
	if err != nil {
		return err
	}

	for _, state := range pending {
		if _, ok := listed[state.NoteID]; ok {
			continue
		}

		local, err := s.notes.Get(ctx, state.NoteID)
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			if err = s.states.Delete(ctx, state.NoteID); err != nil {
				return err
			}
			log.Debug().Str("note_id", state.NoteID).Msg("vanished download dropped")
		case err != nil:
			return err
		default:
			state.Status = models.SyncStatusPendingUpload
			state.LocalModifiedAt = models.NormalizeTime(local.UpdatedAt)
			state.RemoteModifiedAt = nil
			state.ErrorMessage = nil
			if err = s.states.Upsert(ctx, state); err != nil {
				return err
			}
		}
	}
	return nil
}
