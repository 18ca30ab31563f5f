// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

func newTestRetryQueueRepo(t *testing.T) (RetryQueueRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewRetryQueueRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestRetryQueueRepository_ListReady(t *testing.T) {
	repo, mock := newTestRetryQueueRepo(t)
	now := t0.Add(time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM retry_queue WHERE \(next_retry_at <= \$1 AND retry_count < \$2\) ORDER BY next_retry_at, note_id`).
		WithArgs(now, models.MaxRetries).
		WillReturnRows(sqlmock.NewRows(retryQueueColumns).
			AddRow("n1", "v1", 1, t0, t0.Add(time.Minute), "timeout", t0))

	items, err := repo.ListReady(testContext(), now, models.MaxRetries)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "n1", items[0].NoteID)
	assert.Equal(t, 1, items[0].RetryCount)
	assert.Equal(t, "timeout", *items[0].ErrorMessage)
	assert.True(t, items[0].IsReadyForRetry(now))
}

func TestRetryQueueRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestRetryQueueRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM retry_queue WHERE note_id = \$1`).
		WithArgs("n1").
		WillReturnRows(sqlmock.NewRows(retryQueueColumns))

	_, err := repo.Get(testContext(), "n1")
	assert.ErrorIs(t, err, ErrRetryItemNotFound)
}

func TestRetryQueueRepository_Upsert(t *testing.T) {
	repo, mock := newTestRetryQueueRepo(t)

	item := models.NewRetryQueueItem("n1", "v1", "timeout", t0)

	mock.ExpectExec(`INSERT INTO retry_queue (.+) ON CONFLICT \(note_id\) DO UPDATE SET`).
		WithArgs("n1", "v1", 0, t0, t0.Add(time.Minute), "timeout", t0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(testContext(), item))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRetryQueueRepository_RemoveAndClear(t *testing.T) {
	repo, mock := newTestRetryQueueRepo(t)
	ctx := testContext()

	mock.ExpectExec(`DELETE FROM retry_queue WHERE note_id = \$1`).
		WithArgs("n1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM retry_queue WHERE retry_count >= \$1`).
		WithArgs(models.MaxRetries).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`^DELETE FROM retry_queue$`).
		WillReturnResult(sqlmock.NewResult(0, 5))

	require.NoError(t, repo.Remove(ctx, "n1"))

	n, err := repo.RemoveExceeded(ctx, models.MaxRetries)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	require.NoError(t, repo.Clear(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
