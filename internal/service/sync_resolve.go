// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/provider"
	"github.com/MKhiriev/go-note-sync/models"
)

// resolve applies the vault's conflict strategy to every CONFLICT row and
// returns the number of rows that left CONFLICT.
func (s *syncCoordinator) resolve(ctx context.Context, vault models.Vault, p provider.StorageProvider) (int, error) {
	const op = "ResolveConflicts"

	if ctx.Err() != nil {
		return 0, s.cancelled(ctx, op)
	}

	conflicts, err := s.states.ListConflicts(ctx, vault.ID)
	if err != nil {
		return 0, databaseError(op, err)
	}

	resolved := 0
	for i, state := range conflicts {
		if ctx.Err() != nil {
			return resolved, s.cancelled(ctx, op)
		}

		ok, err := s.resolveNote(ctx, vault, p, state)
		if err != nil && ctx.Err() != nil {
			return resolved, s.cancelled(ctx, op)
		}
		if ok {
			resolved++
		}

		s.report(vault.ID, models.SyncStageResolve, i+1, len(conflicts))
	}

	if len(conflicts) > 0 {
		logger.FromContext(ctx).Info().
			Int("conflicts", len(conflicts)).
			Int("resolved", resolved).
			Str("strategy", string(vault.ConflictStrategy)).
			Msg("conflicts processed")
	}
	return resolved, nil
}

// resolveNote reports whether the conflict was settled. Unsettled conflicts
// stay CONFLICT with the reason recorded as their error message.
func (s *syncCoordinator) resolveNote(ctx context.Context, vault models.Vault, p provider.StorageProvider, state models.SyncState) (bool, error) {
	local, err := s.notes.Get(ctx, state.NoteID)
	if err != nil {
		s.keepConflict(ctx, state, fmt.Sprintf("load local note: %v", err))
		return false, err
	}

	remote, err := p.LoadNote(ctx, state.NoteID, vault)
	if err != nil {
		s.keepConflict(ctx, state, fmt.Sprintf("load remote note: %v", err))
		return false, err
	}

	local.UpdatedAt = models.NormalizeTime(local.UpdatedAt)
	remote.ID = state.NoteID
	remote.VaultID = vault.ID
	remote.UpdatedAt = models.NormalizeTime(remote.UpdatedAt)

	switch r := s.resolver.Resolve(local, remote, vault.ConflictStrategy).(type) {
	case models.UseLocal:
		path, err := p.SaveNote(ctx, r.Note, vault)
		if err != nil {
			s.keepConflict(ctx, state, fmt.Sprintf("save local version: %v", err))
			return false, err
		}
		return s.settle(ctx, state, r.Note, path, false)

	case models.UseRemote:
		return s.settle(ctx, state, r.Note, "", true)

	case models.Merged:
		path, err := p.SaveNote(ctx, r.Note, vault)
		if err != nil {
			s.keepConflict(ctx, state, fmt.Sprintf("save merged version: %v", err))
			return false, err
		}
		return s.settle(ctx, state, r.Note, path, true)

	case models.KeepBoth:
		path, err := p.SaveNote(ctx, r.Local, vault)
		if err != nil {
			s.keepConflict(ctx, state, fmt.Sprintf("save local version: %v", err))
			return false, err
		}

		conflictCopy := r.RemoteRenamed
		conflictCopy.VaultID = vault.ID
		copyPath, err := p.SaveNote(ctx, conflictCopy, vault)
		if err != nil {
			s.keepConflict(ctx, state, fmt.Sprintf("save conflict copy: %v", err))
			return false, err
		}
		copyState := models.SyncState{NoteID: conflictCopy.ID, VaultID: vault.ID}
		if _, err = s.settle(ctx, copyState, conflictCopy, copyPath, true); err != nil {
			s.keepConflict(ctx, state, fmt.Sprintf("store conflict copy: %v", err))
			return false, err
		}

		return s.settle(ctx, state, r.Local, path, false)

	case models.RequiresManual:
		s.keepConflict(ctx, state, r.Reason)
		return false, fmt.Errorf("%w: %s", ErrManualResolutionRequired, r.Reason)

	default:
		return false, fmt.Errorf("unexpected conflict resolution %T", r)
	}
}

// settle marks state SYNCED at the note's timestamp. With writeLocal the
// note replaces the local copy.
func (s *syncCoordinator) settle(ctx context.Context, state models.SyncState, note models.Note, path string, writeLocal bool) (bool, error) {
	log := logger.FromContext(ctx)
	at := models.NormalizeTime(note.UpdatedAt)

	if writeLocal {
		note.UpdatedAt = at
		note.IsSynced = true
		if err := s.notes.Upsert(ctx, note); err != nil {
			log.Err(err).Str("func", "syncCoordinator.settle").Str("note_id", note.ID).Msg("error saving resolved note")
			return false, err
		}
	} else if err := s.notes.MarkSynced(ctx, note.ID, true); err != nil {
		log.Warn().Err(err).Str("note_id", note.ID).Msg("error flagging note as synced")
	}

	state.MarkSynced(at, path)
	if err := s.states.Upsert(ctx, state); err != nil {
		log.Err(err).Str("func", "syncCoordinator.settle").Str("note_id", note.ID).Msg("error saving resolved sync state")
		return false, err
	}
	if err := s.retries.RecordSuccessfulSync(ctx, note.ID); err != nil {
		log.Warn().Err(err).Str("note_id", note.ID).Msg("error removing retry item")
	}
	return true, nil
}

func (s *syncCoordinator) keepConflict(ctx context.Context, state models.SyncState, reason string) {
	state.Status = models.SyncStatusConflict
	state.ErrorMessage = &reason

	if err := s.states.Upsert(ctx, state); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncCoordinator.keepConflict").Str("note_id", state.NoteID).Msg("error saving conflict state")
		return
	}
	logger.FromContext(ctx).Debug().Str("note_id", state.NoteID).Str("reason", reason).Msg("conflict left open")
}
