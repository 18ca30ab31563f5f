// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// retryQueueRepository is the SQL implementation of [RetryQueueRepository]
// over the "retry_queue" table.
type retryQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewRetryQueueRepository(db *DB, logger *logger.Logger) RetryQueueRepository {
	logger.Debug().Msg("creating retry queue repository")
	return &retryQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *retryQueueRepository) Get(ctx context.Context, noteID string) (models.RetryQueueItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRetryQueueQuery(sq.Eq{"note_id": noteID})
	if err != nil {
		return models.RetryQueueItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanRetryQueueItem(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RetryQueueItem{}, ErrRetryItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "retryQueueRepository.Get").
			Str("note_id", noteID).
			Msg("failed to scan retry queue row")
		return models.RetryQueueItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *retryQueueRepository) ListAll(ctx context.Context) ([]models.RetryQueueItem, error) {
	return r.list(ctx, "retryQueueRepository.ListAll", nil)
}

func (r *retryQueueRepository) ListReady(ctx context.Context, now time.Time, maxRetries int) ([]models.RetryQueueItem, error) {
	return r.list(ctx, "retryQueueRepository.ListReady", readyForRetryPredicate(now, maxRetries))
}

func (r *retryQueueRepository) ListByVault(ctx context.Context, vaultID string) ([]models.RetryQueueItem, error) {
	return r.list(ctx, "retryQueueRepository.ListByVault", sq.Eq{"vault_id": vaultID})
}

func (r *retryQueueRepository) ListExceeded(ctx context.Context, maxRetries int) ([]models.RetryQueueItem, error) {
	return r.list(ctx, "retryQueueRepository.ListExceeded", sq.GtOrEq{"retry_count": maxRetries})
}

func (r *retryQueueRepository) list(ctx context.Context, fn string, where sq.Sqlizer) ([]models.RetryQueueItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRetryQueueQuery(where)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query for retry queue")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.RetryQueueItem, 0, 8)
	for rows.Next() {
		item, scanErr := scanRetryQueueItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan retry queue row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *retryQueueRepository) Upsert(ctx context.Context, item models.RetryQueueItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRetryQueueQuery(item)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "retryQueueRepository.Upsert").
			Str("note_id", item.NoteID).
			Int("retry_count", item.RetryCount).
			Msg("failed to upsert retry queue item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *retryQueueRepository) Remove(ctx context.Context, noteID string) error {
	_, err := r.delete(ctx, "retryQueueRepository.Remove", sq.Eq{"note_id": noteID})
	return err
}

func (r *retryQueueRepository) RemoveExceeded(ctx context.Context, maxRetries int) (int64, error) {
	return r.delete(ctx, "retryQueueRepository.RemoveExceeded", sq.GtOrEq{"retry_count": maxRetries})
}

func (r *retryQueueRepository) Clear(ctx context.Context) error {
	_, err := r.delete(ctx, "retryQueueRepository.Clear", nil)
	return err
}

func (r *retryQueueRepository) delete(ctx context.Context, fn string, where sq.Sqlizer) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRetryQueueQuery(where)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to delete retry queue items")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}

func scanRetryQueueItem(row rowScanner) (models.RetryQueueItem, error) {
	var item models.RetryQueueItem
	err := row.Scan(
		&item.NoteID,
		&item.VaultID,
		&item.RetryCount,
		&item.LastAttemptAt,
		&item.NextRetryAt,
		&item.ErrorMessage,
		&item.CreatedAt,
	)
	return item, err
}
