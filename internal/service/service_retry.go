// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type retryService struct {
	queue  store.RetryQueueRepository
	now    func() time.Time
	logger *logger.Logger
}

// NewRetryService returns a RetryService backed by queue. A nil now uses time.Now.
func NewRetryService(queue store.RetryQueueRepository, now func() time.Time, logger *logger.Logger) RetryService {
	if now == nil {
		now = time.Now
	}
	return &retryService{queue: queue, now: now, logger: logger}
}

func (s *retryService) RecordFailedSync(ctx context.Context, noteID, vaultID string, cause error) (models.RetryQueueItem, error) {
	log := logger.FromContext(ctx)
	now := models.NormalizeTime(s.now())

	msg := ""
	if cause != nil {
		msg = cause.Error()
	}

	item, err := s.queue.Get(ctx, noteID)
	switch {
	case errors.Is(err, store.ErrRetryItemNotFound):
		item = models.NewRetryQueueItem(noteID, vaultID, msg, now)
	case err != nil:
		log.Err(err).Str("func", "retryService.RecordFailedSync").Str("note_id", noteID).Msg("error getting retry item")
		return models.RetryQueueItem{}, fmt.Errorf("get retry item: %w", err)
	}

	item = item.NextRetry(msg, now)
	if err = s.queue.Upsert(ctx, item); err != nil {
		log.Err(err).Str("func", "retryService.RecordFailedSync").Str("note_id", noteID).Msg("error saving retry item")
		return models.RetryQueueItem{}, fmt.Errorf("save retry item: %w", err)
	}

	log.Debug().
		Str("note_id", noteID).
		Int("retry_count", item.RetryCount).
		Time("next_retry_at", item.NextRetryAt).
		Msg("sync failure recorded")
	return item, nil
}

func (s *retryService) RecordSuccessfulSync(ctx context.Context, noteID string) error {
	err := s.queue.Remove(ctx, noteID)
	if err != nil && !errors.Is(err, store.ErrRetryItemNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "retryService.RecordSuccessfulSync").Str("note_id", noteID).Msg("error removing retry item")
		return fmt.Errorf("remove retry item: %w", err)
	}
	return nil
}

func (s *retryService) ReadyForRetry(ctx context.Context) ([]models.RetryQueueItem, error) {
	items, err := s.queue.ListReady(ctx, models.NormalizeTime(s.now()), models.MaxRetries)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "retryService.ReadyForRetry").Msg("error listing ready retry items")
		return nil, fmt.Errorf("list ready retry items: %w", err)
	}
	return items, nil
}

func (s *retryService) Pending(ctx context.Context, vaultID string) ([]models.RetryQueueItem, error) {
	items, err := s.queue.ListByVault(ctx, vaultID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "retryService.Pending").Str("vault_id", vaultID).Msg("error listing retry items")
		return nil, fmt.Errorf("list retry items: %w", err)
	}
	return items, nil
}

func (s *retryService) CleanupExceeded(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	exceeded, err := s.queue.ListExceeded(ctx, models.MaxRetries)
	if err != nil {
		log.Err(err).Str("func", "retryService.CleanupExceeded").Msg("error listing exceeded retry items")
		return 0, fmt.Errorf("list exceeded retry items: %w", err)
	}
	if len(exceeded) == 0 {
		return 0, nil
	}

	for _, item := range exceeded {
		event := log.Warn().Str("note_id", item.NoteID).Str("vault_id", item.VaultID).Int("retry_count", item.RetryCount)
		if item.ErrorMessage != nil {
			event = event.Str("last_error", *item.ErrorMessage)
		}
		event.Msg("giving up on note after repeated sync failures")
	}

	removed, err := s.queue.RemoveExceeded(ctx, models.MaxRetries)
	if err != nil {
		log.Err(err).Str("func", "retryService.CleanupExceeded").Msg("error removing exceeded retry items")
		return 0, fmt.Errorf("remove exceeded retry items: %w", err)
	}
	return removed, nil
}
