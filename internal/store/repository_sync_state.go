// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// syncStateRepository is the SQL implementation of [SyncStateRepository]
// over the "sync_states" table.
type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	logger.Debug().Msg("creating sync state repository")
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncStateRepository) Get(ctx context.Context, noteID string) (models.SyncState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncStatesQuery(sq.Eq{"note_id": noteID})
	if err != nil {
		log.Err(err).Str("func", "syncStateRepository.Get").Msg("failed to create query")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	state, err := scanSyncState(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncState{}, ErrSyncStateNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.Get").
			Str("note_id", noteID).
			Msg("failed to scan sync state row")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return state, nil
}

func (r *syncStateRepository) ListByVault(ctx context.Context, vaultID string) ([]models.SyncState, error) {
	return r.list(ctx, "syncStateRepository.ListByVault", sq.Eq{"vault_id": vaultID})
}

func (r *syncStateRepository) ListByStatus(ctx context.Context, status models.SyncStatus) ([]models.SyncState, error) {
	return r.list(ctx, "syncStateRepository.ListByStatus", sq.Eq{"status": string(status)})
}

func (r *syncStateRepository) ListByVaultAndStatus(ctx context.Context, vaultID string, status models.SyncStatus) ([]models.SyncState, error) {
	return r.list(ctx, "syncStateRepository.ListByVaultAndStatus",
		vaultFilter(vaultID, sq.Eq{"status": string(status)}))
}

func (r *syncStateRepository) ListPendingUpload(ctx context.Context, vaultID string, maxRetries int) ([]models.SyncState, error) {
	return r.list(ctx, "syncStateRepository.ListPendingUpload",
		vaultFilter(vaultID, pendingUploadPredicate(maxRetries)))
}

func (r *syncStateRepository) ListPendingDownload(ctx context.Context, vaultID string) ([]models.SyncState, error) {
	return r.ListByVaultAndStatus(ctx, vaultID, models.SyncStatusPendingDownload)
}

func (r *syncStateRepository) ListConflicts(ctx context.Context, vaultID string) ([]models.SyncState, error) {
	return r.ListByVaultAndStatus(ctx, vaultID, models.SyncStatusConflict)
}

func (r *syncStateRepository) list(ctx context.Context, fn string, where sq.Sqlizer) ([]models.SyncState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSyncStatesQuery(where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for sync states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.SyncState, 0, 16)
	for rows.Next() {
		state, scanErr := scanSyncState(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan sync state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		states = append(states, state)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return states, nil
}

func (r *syncStateRepository) CountByStatus(ctx context.Context, vaultID string) (models.StatusCounts, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByStatusQuery(vaultID)
	if err != nil {
		log.Err(err).Str("func", "syncStateRepository.CountByStatus").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.CountByStatus").
			Str("vault_id", vaultID).
			Msg("failed to count sync states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(models.StatusCounts)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if scanErr := rows.Scan(&status, &n); scanErr != nil {
			log.Err(scanErr).Str("func", "syncStateRepository.CountByStatus").Msg("failed to scan count row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		counts[models.SyncStatus(status)] = n
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return counts, nil
}

func (r *syncStateRepository) Upsert(ctx context.Context, states ...models.SyncState) error {
	log := logger.FromContext(ctx)

	if len(states) == 0 {
		return nil
	}

	return r.inTx(ctx, func(tx *sql.Tx) error {
		for _, state := range states {
			query, args, err := buildUpsertSyncStateQuery(state)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).
					Str("func", "syncStateRepository.Upsert").
					Str("note_id", state.NoteID).
					Str("vault_id", state.VaultID).
					Msg("failed to upsert sync state")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (r *syncStateRepository) Delete(ctx context.Context, noteID string) error {
	_, err := r.delete(ctx, "syncStateRepository.Delete", sq.Eq{"note_id": noteID})
	return err
}

func (r *syncStateRepository) DeleteByVault(ctx context.Context, vaultID string) (int64, error) {
	return r.delete(ctx, "syncStateRepository.DeleteByVault", sq.Eq{"vault_id": vaultID})
}

func (r *syncStateRepository) DeleteSynced(ctx context.Context, vaultID string) (int64, error) {
	return r.delete(ctx, "syncStateRepository.DeleteSynced",
		vaultFilter(vaultID, sq.Eq{"status": string(models.SyncStatusSynced)}))
}

func (r *syncStateRepository) delete(ctx context.Context, fn string, where sq.Sqlizer) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSyncStatesQuery(where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to delete sync states")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}

func (r *syncStateRepository) ResetRetryCounts(ctx context.Context, vaultID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildResetRetryCountsQuery(vaultID)
	if err != nil {
		log.Err(err).Str("func", "syncStateRepository.ResetRetryCounts").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "syncStateRepository.ResetRetryCounts").
			Str("vault_id", vaultID).
			Msg("failed to reset retry counts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}

func scanSyncState(row rowScanner) (models.SyncState, error) {
	var (
		state  models.SyncState
		status string
	)
	err := row.Scan(
		&state.NoteID,
		&state.VaultID,
		&status,
		&state.LocalModifiedAt,
		&state.RemoteModifiedAt,
		&state.LastSyncedAt,
		&state.RemotePath,
		&state.RetryCount,
		&state.ErrorMessage,
	)
	state.Status = models.SyncStatus(status)
	return state, err
}
