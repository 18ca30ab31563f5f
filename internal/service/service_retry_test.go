// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

func TestRetryService_RecordFailedSync_Backoff(t *testing.T) {
	queue := newFakeRetryQueue()
	clock := &testClock{t: t0}
	svc := NewRetryService(queue, clock.now, logger.Nop())

	wantDelays := []time.Duration{time.Minute, 5 * time.Minute, 15 * time.Minute, time.Hour, time.Hour}

	for i, want := range wantDelays {
		item, err := svc.RecordFailedSync(context.Background(), "n1", testVaultID, errBoom)
		require.NoError(t, err)

		assert.Equal(t, i+1, item.RetryCount)
		assert.Equal(t, want, item.NextRetryAt.Sub(t0), "attempt %d", i+1)
		assert.Equal(t, t0, item.LastAttemptAt)
		assert.Equal(t, t0, item.CreatedAt)
		require.NotNil(t, item.ErrorMessage)
		assert.Equal(t, "boom", *item.ErrorMessage)
		assert.Equal(t, i+1 == models.MaxRetries, item.HasExceededMaxRetries())
	}

	stored, ok := queue.get("n1")
	require.True(t, ok)
	assert.Equal(t, models.MaxRetries, stored.RetryCount)
}

func TestRetryService_ReadyForRetry(t *testing.T) {
	queue := newFakeRetryQueue()
	clock := &testClock{t: t0}
	svc := NewRetryService(queue, clock.now, logger.Nop())

	_, err := svc.RecordFailedSync(context.Background(), "n1", testVaultID, errBoom)
	require.NoError(t, err)

	ready, err := svc.ReadyForRetry(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ready, "backoff has not elapsed")

	clock.t = t0.Add(time.Minute)
	ready, err = svc.ReadyForRetry(context.Background())
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, "n1", ready[0].NoteID)

	exhausted := models.NewRetryQueueItem("n2", testVaultID, "boom", t0.Add(-time.Hour))
	exhausted.RetryCount = models.MaxRetries
	require.NoError(t, queue.Upsert(context.Background(), exhausted))

	ready, err = svc.ReadyForRetry(context.Background())
	require.NoError(t, err)
	assert.Len(t, ready, 1, "items past the retry limit are not ready")
}

func TestRetryService_RecordSuccessfulSync(t *testing.T) {
	queue := newFakeRetryQueue()
	svc := NewRetryService(queue, func() time.Time { return t0 }, logger.Nop())

	_, err := svc.RecordFailedSync(context.Background(), "n1", testVaultID, errBoom)
	require.NoError(t, err)

	require.NoError(t, svc.RecordSuccessfulSync(context.Background(), "n1"))
	_, ok := queue.get("n1")
	assert.False(t, ok)

	assert.NoError(t, svc.RecordSuccessfulSync(context.Background(), "never-failed"))
}

func TestRetryService_Pending(t *testing.T) {
	queue := newFakeRetryQueue()
	svc := NewRetryService(queue, func() time.Time { return t0 }, logger.Nop())

	_, err := svc.RecordFailedSync(context.Background(), "n1", testVaultID, errBoom)
	require.NoError(t, err)
	_, err = svc.RecordFailedSync(context.Background(), "n2", "vault-2", errBoom)
	require.NoError(t, err)

	items, err := svc.Pending(context.Background(), testVaultID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "n1", items[0].NoteID)
}

func TestRetryService_CleanupExceeded(t *testing.T) {
	queue := newFakeRetryQueue()
	svc := NewRetryService(queue, func() time.Time { return t0 }, logger.Nop())

	removed, err := svc.CleanupExceeded(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)

	for range models.MaxRetries {
		_, err = svc.RecordFailedSync(context.Background(), "n1", testVaultID, errBoom)
		require.NoError(t, err)
	}
	_, err = svc.RecordFailedSync(context.Background(), "n2", testVaultID, errBoom)
	require.NoError(t, err)

	removed, err = svc.CleanupExceeded(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, ok := queue.get("n1")
	assert.False(t, ok)
	_, ok = queue.get("n2")
	assert.True(t, ok)
}

func TestRetryService_RepositoryErrors(t *testing.T) {
	dbErr := errors.New("database is locked")

	tests := []struct {
		name  string
		setup func(q *mock.MockRetryQueueRepository)
		call  func(svc RetryService) error
	}{
		{
			name: "get fails",
			setup: func(q *mock.MockRetryQueueRepository) {
				q.EXPECT().Get(gomock.Any(), "n1").Return(models.RetryQueueItem{}, dbErr)
			},
			call: func(svc RetryService) error {
				_, err := svc.RecordFailedSync(context.Background(), "n1", testVaultID, errBoom)
				return err
			},
		},
		{
			name: "upsert fails",
			setup: func(q *mock.MockRetryQueueRepository) {
				q.EXPECT().Get(gomock.Any(), "n1").Return(models.RetryQueueItem{}, store.ErrRetryItemNotFound)
				q.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			call: func(svc RetryService) error {
				_, err := svc.RecordFailedSync(context.Background(), "n1", testVaultID, errBoom)
				return err
			},
		},
		{
			name: "remove fails",
			setup: func(q *mock.MockRetryQueueRepository) {
				q.EXPECT().Remove(gomock.Any(), "n1").Return(dbErr)
			},
			call: func(svc RetryService) error {
				return svc.RecordSuccessfulSync(context.Background(), "n1")
			},
		},
		{
			name: "list ready fails",
			setup: func(q *mock.MockRetryQueueRepository) {
				q.EXPECT().ListReady(gomock.Any(), t0, models.MaxRetries).Return(nil, dbErr)
			},
			call: func(svc RetryService) error {
				_, err := svc.ReadyForRetry(context.Background())
				return err
			},
		},
		{
			name: "remove exceeded fails",
			setup: func(q *mock.MockRetryQueueRepository) {
				q.EXPECT().ListExceeded(gomock.Any(), models.MaxRetries).Return([]models.RetryQueueItem{{NoteID: "n1", RetryCount: models.MaxRetries}}, nil)
				q.EXPECT().RemoveExceeded(gomock.Any(), models.MaxRetries).Return(int64(0), dbErr)
			},
			call: func(svc RetryService) error {
				_, err := svc.CleanupExceeded(context.Background())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			queue := mock.NewMockRetryQueueRepository(ctrl)
			tt.setup(queue)

			svc := NewRetryService(queue, func() time.Time { return t0 }, logger.Nop())
			err := tt.call(svc)
			require.Error(t, err)
			assert.ErrorIs(t, err, dbErr)
		})
	}
}
