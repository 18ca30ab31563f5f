// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

const defaultSyncInterval = 5 * time.Minute

type syncJob struct {
	coordinator SyncCoordinator
	retries     RetryService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that runs a full sync followed by a retry pass
// on a ticker. The job is idle until Start is called.
func NewSyncJob(coordinator SyncCoordinator, retries RetryService, logger *logger.Logger) SyncJob {
	return &syncJob{
		coordinator: coordinator,
		retries:     retries,
		logger:      logger,
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that runs a pass every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runPass(jobCtx)
			}
		}
	}()

	j.logger.Info().Dur("interval", interval).Msg("sync job started")
}

// runPass syncs every vault, retries failed notes and drops retry items that
// reached the retry limit.
func (j *syncJob) runPass(ctx context.Context) {
	if _, err := j.coordinator.SyncAll(ctx); err != nil {
		j.logger.Err(err).Str("func", "syncJob.runPass").Msg("vault sync pass finished with errors")
	}
	if ctx.Err() != nil {
		return
	}

	if _, err := j.coordinator.RetryFailed(ctx); err != nil {
		j.logger.Err(err).Str("func", "syncJob.runPass").Msg("retry pass failed")
	}

	if removed, err := j.retries.CleanupExceeded(ctx); err != nil {
		j.logger.Err(err).Str("func", "syncJob.runPass").Msg("retry queue cleanup failed")
	} else if removed > 0 {
		j.logger.Info().Int64("removed", removed).Msg("exhausted retry items removed")
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
