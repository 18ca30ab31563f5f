// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/provider"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// MaxPushRetries is the number of failed pushes after which an ERROR row is
// no longer picked up by the push stage. The retry queue keeps retrying it.
const MaxPushRetries = 3

const defaultMaxConcurrentVaults = 4

// ProgressFunc receives a progress event after every processed note.
// It is called from the syncing goroutine and must not block.
type ProgressFunc func(models.SyncProgress)

type CoordinatorOption func(*syncCoordinator)

// WithProgressFunc registers a progress callback.
func WithProgressFunc(fn ProgressFunc) CoordinatorOption {
	return func(s *syncCoordinator) { s.progress = fn }
}

// WithClock replaces time.Now. It is also used by the default conflict resolver.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(s *syncCoordinator) { s.now = now }
}

func WithConflictResolver(resolver ConflictResolver) CoordinatorOption {
	return func(s *syncCoordinator) { s.resolver = resolver }
}

// WithMaxConcurrentVaults bounds the number of vaults SyncAll runs at once.
func WithMaxConcurrentVaults(n int) CoordinatorOption {
	return func(s *syncCoordinator) {
		if n > 0 {
			s.maxConcurrentVaults = n
		}
	}
}

type syncCoordinator struct {
	states    store.SyncStateRepository
	notes     store.NoteRepository
	vaults    store.VaultRepository
	providers ProviderFactory
	retries   RetryService
	resolver  ConflictResolver
	registry  *syncRegistry

	progress            ProgressFunc
	now                 func() time.Time
	maxConcurrentVaults int

	logger *logger.Logger
}

func NewSyncCoordinator(storages *store.Storages, providers ProviderFactory, retries RetryService, logger *logger.Logger, opts ...CoordinatorOption) SyncCoordinator {
	s := &syncCoordinator{
		states:              storages.SyncStates,
		notes:               storages.Notes,
		vaults:              storages.Vaults,
		providers:           providers,
		retries:             retries,
		registry:            newSyncRegistry(),
		now:                 time.Now,
		maxConcurrentVaults: defaultMaxConcurrentVaults,
		logger:              logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.resolver == nil {
		s.resolver = NewConflictResolver(s.now, nil)
	}
	return s
}

func (s *syncCoordinator) SyncVault(ctx context.Context, vaultID string) (models.SyncResult, error) {
	const op = "SyncVault"
	ctx, log := s.vaultContext(ctx, vaultID)

	vault, err := s.loadVault(ctx, op, vaultID)
	if err != nil {
		return models.SyncResult{}, err
	}
	if vault.SyncMode == models.SyncModeDisabled {
		log.Debug().Msg("sync disabled for vault, skipping")
		return models.SyncResult{}, nil
	}

	jobCtx, release, err := s.begin(ctx, op, vaultID)
	if err != nil {
		return models.SyncResult{}, err
	}
	defer release()

	return s.syncVault(jobCtx, vault)
}

func (s *syncCoordinator) syncVault(ctx context.Context, vault models.Vault) (models.SyncResult, error) {
	const op = "SyncVault"
	log := logger.FromContext(ctx)
	started := s.now()

	var result models.SyncResult

	p, err := s.providerFor(ctx, op, vault)
	if err != nil {
		return result, err
	}

	if vault.SyncMode.Pushes() {
		pushed, err := s.push(ctx, vault, p)
		result = addResults(result, pushed)
		if err != nil {
			return result, err
		}
	}

	if vault.SyncMode.Pulls() {
		pulled, err := s.pull(ctx, vault, p)
		result = addResults(result, pulled)
		if err != nil {
			return result, err
		}
	}

	if vault.SyncMode == models.SyncModeBidirectional {
		if _, err = s.resolve(ctx, vault, p); err != nil {
			return result, err
		}
	}

	counts, err := s.states.CountByStatus(ctx, vault.ID)
	if err != nil {
		return result, databaseError(op, err)
	}
	result.Conflicts = counts[models.SyncStatusConflict]

	if result.Clean() {
		if err = s.vaults.UpdateLastSynced(ctx, vault.ID, models.NormalizeTime(s.now())); err != nil {
			log.Err(err).Str("func", "syncCoordinator.syncVault").Msg("error updating vault last synced time")
			return result, databaseError(op, err)
		}
	}

	log.Info().
		Int("uploaded", result.Uploaded).
		Int("downloaded", result.Downloaded).
		Int("conflicts", result.Conflicts).
		Int("errors", result.Errors).
		Int("skipped", result.Skipped).
		Dur("took", s.now().Sub(started)).
		Msg("vault synced")

	return result, nil
}

func (s *syncCoordinator) SyncNote(ctx context.Context, noteID string) error {
	const op = "SyncNote"

	note, err := s.notes.Get(ctx, noteID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return newSyncError(CategoryValidation, op, ErrNoteNotFound, nil)
	}
	if err != nil {
		return databaseError(op, err)
	}

	ctx, log := s.vaultContext(ctx, note.VaultID)

	vault, err := s.loadVault(ctx, op, note.VaultID)
	if err != nil {
		return err
	}
	if !vault.SyncMode.Pushes() {
		log.Debug().Str("note_id", noteID).Str("sync_mode", string(vault.SyncMode)).Msg("vault does not push, skipping note")
		return newSyncError(CategoryValidation, op, ErrSyncModeExcludesPush, nil)
	}

	jobCtx, release, err := s.begin(ctx, op, vault.ID)
	if err != nil {
		return err
	}
	defer release()

	p, err := s.providerFor(jobCtx, op, vault)
	if err != nil {
		return err
	}

	state, err := s.states.Get(jobCtx, noteID)
	switch {
	case errors.Is(err, store.ErrSyncStateNotFound):
		state = models.SyncState{
			NoteID:          note.ID,
			VaultID:         vault.ID,
			Status:          models.SyncStatusPendingUpload,
			LocalModifiedAt: models.NormalizeTime(note.UpdatedAt),
		}
	case err != nil:
		return databaseError(op, err)
	}

	outcome, err := s.pushNote(jobCtx, vault, p, state)
	switch outcome {
	case outcomeFailed:
		return newSyncError(providerCategory(p), op, ErrPushFailed, err)
	case outcomeCancelled:
		return s.cancelled(jobCtx, op)
	case outcomeSkipped:
		return newSyncError(CategoryValidation, op, ErrNoteNotFound, nil)
	case outcomeConflict:
		return newSyncError(CategorySync, op, ErrManualResolutionRequired, nil)
	}
	return nil
}

func (s *syncCoordinator) PushChanges(ctx context.Context, vaultID string) (int, error) {
	const op = "PushChanges"

	var uploaded int
	err := s.runStage(ctx, op, vaultID, models.SyncMode.Pushes, func(ctx context.Context, vault models.Vault, p provider.StorageProvider) error {
		res, err := s.push(ctx, vault, p)
		uploaded = res.Uploaded
		return err
	})
	return uploaded, err
}

func (s *syncCoordinator) PullChanges(ctx context.Context, vaultID string) (int, error) {
	const op = "PullChanges"

	var downloaded int
	err := s.runStage(ctx, op, vaultID, models.SyncMode.Pulls, func(ctx context.Context, vault models.Vault, p provider.StorageProvider) error {
		res, err := s.pull(ctx, vault, p)
		downloaded = res.Downloaded
		return err
	})
	return downloaded, err
}

func (s *syncCoordinator) ResolveConflicts(ctx context.Context, vaultID string) (int, error) {
	const op = "ResolveConflicts"

	enabled := func(m models.SyncMode) bool { return m != models.SyncModeDisabled }

	var resolved int
	err := s.runStage(ctx, op, vaultID, enabled, func(ctx context.Context, vault models.Vault, p provider.StorageProvider) error {
		var err error
		resolved, err = s.resolve(ctx, vault, p)
		return err
	})
	return resolved, err
}

// runStage runs a single sync stage as a registered sync of vaultID. It is
// a no-op when the vault's mode does not run the stage.
func (s *syncCoordinator) runStage(ctx context.Context, op, vaultID string, runs func(models.SyncMode) bool,
	stage func(context.Context, models.Vault, provider.StorageProvider) error) error {
	ctx, _ = s.vaultContext(ctx, vaultID)

	vault, err := s.loadVault(ctx, op, vaultID)
	if err != nil || !runs(vault.SyncMode) {
		return err
	}

	jobCtx, release, err := s.begin(ctx, op, vaultID)
	if err != nil {
		return err
	}
	defer release()

	p, err := s.providerFor(jobCtx, op, vault)
	if err != nil {
		return err
	}

	return stage(jobCtx, vault, p)
}

func (s *syncCoordinator) ForceResync(ctx context.Context, vaultID string) (models.SyncResult, error) {
	const op = "ForceResync"
	ctx, log := s.vaultContext(ctx, vaultID)

	vault, err := s.loadVault(ctx, op, vaultID)
	if err != nil {
		return models.SyncResult{}, err
	}

	jobCtx, release, err := s.begin(ctx, op, vaultID)
	if err != nil {
		return models.SyncResult{}, err
	}
	defer release()

	removed, err := s.states.DeleteByVault(jobCtx, vault.ID)
	if err != nil {
		return models.SyncResult{}, databaseError(op, err)
	}

	notes, err := s.notes.ListByVault(jobCtx, vault.ID)
	if err != nil {
		return models.SyncResult{}, databaseError(op, err)
	}

	baseline := make([]models.SyncState, 0, len(notes))
	for _, note := range notes {
		at := models.NormalizeTime(note.UpdatedAt)
		state := models.SyncState{
			NoteID:          note.ID,
			VaultID:         vault.ID,
			Status:          models.SyncStatusPendingUpload,
			LocalModifiedAt: at,
		}
		if note.IsSynced {
			state.Status = models.SyncStatusSynced
			state.LastSyncedAt = &at
		}
		baseline = append(baseline, state)
	}
	if len(baseline) > 0 {
		if err = s.states.Upsert(jobCtx, baseline...); err != nil {
			return models.SyncResult{}, databaseError(op, err)
		}
	}

	log.Info().Int64("removed", removed).Int("rebuilt", len(baseline)).Msg("sync state rebuilt")

	if vault.SyncMode == models.SyncModeDisabled {
		return models.SyncResult{}, nil
	}
	return s.syncVault(jobCtx, vault)
}

func (s *syncCoordinator) GetSyncProgress(ctx context.Context, vaultID string) (int, error) {
	const op = "GetSyncProgress"

	if _, err := s.loadVault(ctx, op, vaultID); err != nil {
		return 0, err
	}

	counts, err := s.states.CountByStatus(ctx, vaultID)
	if err != nil {
		return 0, databaseError(op, err)
	}
	return counts.Progress(), nil
}

func (s *syncCoordinator) CancelSync(vaultID string) bool {
	cancelled := s.registry.cancel(vaultID)
	if cancelled {
		s.logger.Info().Str("vault_id", vaultID).Msg("vault sync cancellation requested")
	}
	return cancelled
}

func (s *syncCoordinator) SyncAll(ctx context.Context) (map[string]models.SyncResult, error) {
	vaults, err := s.vaults.List(ctx)
	if err != nil {
		return nil, databaseError("SyncAll", err)
	}

	var (
		mu      sync.Mutex
		errs    []error
		results = make(map[string]models.SyncResult, len(vaults))
	)

	var g errgroup.Group
	g.SetLimit(s.maxConcurrentVaults)

	for _, vault := range vaults {
		if vault.SyncMode == models.SyncModeDisabled {
			continue
		}
		g.Go(func() error {
			res, err := s.SyncVault(ctx, vault.ID)

			mu.Lock()
			defer mu.Unlock()
			results[vault.ID] = res
			if err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
				errs = append(errs, fmt.Errorf("vault %s: %w", vault.ID, err))
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, errors.Join(errs...)
}

func (s *syncCoordinator) RetryFailed(ctx context.Context) (int, error) {
	const op = "RetryFailed"

	items, err := s.retries.ReadyForRetry(ctx)
	if err != nil {
		return 0, databaseError(op, err)
	}

	succeeded := 0
	for _, item := range items {
		if ctx.Err() != nil {
			return succeeded, s.cancelled(ctx, op)
		}

		log := s.logger.With().Str("note_id", item.NoteID).Str("vault_id", item.VaultID).Logger()

		err = s.SyncNote(ctx, item.NoteID)
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSyncAlreadyRunning), errors.Is(err, ErrSyncCancelled):
			log.Debug().Err(err).Msg("retry postponed")
		case errors.Is(err, ErrNoteNotFound),
			errors.Is(err, ErrVaultNotFound),
			errors.Is(err, ErrSyncModeExcludesPush),
			errors.Is(err, ErrManualResolutionRequired):
			// the conflict stage owns a CONFLICT row from here on
			log.Info().Err(err).Msg("note can no longer be retried, dropping retry item")
			if err = s.retries.RecordSuccessfulSync(ctx, item.NoteID); err != nil {
				log.Err(err).Str("func", "syncCoordinator.RetryFailed").Msg("error dropping retry item")
			}
		case errors.Is(err, ErrPushFailed):
			// already recorded by the push
		default:
			if _, rerr := s.retries.RecordFailedSync(ctx, item.NoteID, item.VaultID, err); rerr != nil {
				log.Err(rerr).Str("func", "syncCoordinator.RetryFailed").Msg("error recording retry failure")
			}
		}
	}

	if len(items) > 0 {
		s.logger.Info().Int("ready", len(items)).Int("succeeded", succeeded).Msg("retry pass finished")
	}
	return succeeded, nil
}

func (s *syncCoordinator) TrackLocalChange(ctx context.Context, note models.Note) error {
	const op = "TrackLocalChange"

	if note.ID == "" || note.VaultID == "" {
		return newSyncError(CategoryValidation, op, ErrInvalidNote, errors.New("note id and vault id are required"))
	}

	ctx, log := s.vaultContext(ctx, note.VaultID)
	if _, err := s.loadVault(ctx, op, note.VaultID); err != nil {
		return err
	}

	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = s.now()
	}
	note.UpdatedAt = models.NormalizeTime(note.UpdatedAt)
	note.IsSynced = false

	if note.CreatedAt.IsZero() {
		note.CreatedAt = note.UpdatedAt
		if existing, err := s.notes.Get(ctx, note.ID); err == nil {
			note.CreatedAt = existing.CreatedAt
		}
	}

	if err := s.notes.Upsert(ctx, note); err != nil {
		return databaseError(op, err)
	}

	state, err := s.states.Get(ctx, note.ID)
	switch {
	case errors.Is(err, store.ErrSyncStateNotFound):
		state = models.SyncState{NoteID: note.ID}
	case err != nil:
		return databaseError(op, err)
	}

	state.VaultID = note.VaultID
	state.LocalModifiedAt = note.UpdatedAt
	if state.Status != models.SyncStatusConflict {
		state.Status = models.SyncStatusPendingUpload
		state.RetryCount = 0
		state.ErrorMessage = nil
	}

	if err = s.states.Upsert(ctx, state); err != nil {
		return databaseError(op, err)
	}

	log.Debug().Str("note_id", note.ID).Str("status", string(state.Status)).Msg("local change tracked")
	return nil
}

func (s *syncCoordinator) ListSyncStates(ctx context.Context, vaultID string, status models.SyncStatus) ([]models.SyncState, error) {
	const op = "ListSyncStates"

	if status != "" && !status.Valid() {
		return nil, newSyncError(CategoryValidation, op, ErrInvalidSyncStatus, fmt.Errorf("%q", status))
	}

	var (
		states []models.SyncState
		err    error
	)
	switch {
	case vaultID == "" && status == "":
		return nil, newSyncError(CategoryValidation, op, ErrInvalidSyncStatus, errors.New("vault id or status required"))
	case vaultID == "":
		states, err = s.states.ListByStatus(ctx, status)
	case status == "":
		if _, err = s.loadVault(ctx, op, vaultID); err != nil {
			return nil, err
		}
		states, err = s.states.ListByVault(ctx, vaultID)
	default:
		if _, err = s.loadVault(ctx, op, vaultID); err != nil {
			return nil, err
		}
		states, err = s.states.ListByVaultAndStatus(ctx, vaultID, status)
	}
	if err != nil {
		return nil, databaseError(op, err)
	}
	return states, nil
}

func (s *syncCoordinator) ForgetSynced(ctx context.Context, vaultID string) (int64, error) {
	const op = "ForgetSynced"

	if vaultID != "" {
		if _, err := s.loadVault(ctx, op, vaultID); err != nil {
			return 0, err
		}
	}

	n, err := s.states.DeleteSynced(ctx, vaultID)
	if err != nil {
		return 0, databaseError(op, err)
	}
	return n, nil
}

func (s *syncCoordinator) ResetErrors(ctx context.Context, vaultID string) (int64, error) {
	const op = "ResetErrors"

	if vaultID != "" {
		if _, err := s.loadVault(ctx, op, vaultID); err != nil {
			return 0, err
		}
	}

	n, err := s.states.ResetRetryCounts(ctx, vaultID)
	if err != nil {
		return 0, databaseError(op, err)
	}
	return n, nil
}

// begin registers a sync of vaultID and returns its cancellable context.
// release must be called when the sync finishes.
func (s *syncCoordinator) begin(ctx context.Context, op, vaultID string) (context.Context, func(), error) {
	jobCtx, cancel := context.WithCancel(ctx)

	release, ok := s.registry.register(vaultID, cancel)
	if !ok {
		cancel()
		return nil, nil, newSyncError(CategorySync, op, ErrSyncAlreadyRunning, nil)
	}

	return jobCtx, func() {
		release()
		cancel()
	}, nil
}

// vaultContext attaches a logger tagged with the vault id to ctx. A logger
// already carried by ctx (for example with a trace id) is kept as the parent.
func (s *syncCoordinator) vaultContext(ctx context.Context, vaultID string) (context.Context, *logger.Logger) {
	base := logger.FromContext(ctx)
	if base.GetLevel() == zerolog.Disabled {
		base = s.logger
	}
	log := base.WithVault(vaultID)
	return log.WithContext(ctx), log
}

func (s *syncCoordinator) loadVault(ctx context.Context, op, vaultID string) (models.Vault, error) {
	vault, err := s.vaults.Get(ctx, vaultID)
	if errors.Is(err, store.ErrVaultNotFound) {
		return models.Vault{}, newSyncError(CategoryValidation, op, ErrVaultNotFound, nil)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncCoordinator.loadVault").Msg("error loading vault")
		return models.Vault{}, databaseError(op, err)
	}
	return vault, nil
}

func (s *syncCoordinator) providerFor(ctx context.Context, op string, vault models.Vault) (provider.StorageProvider, error) {
	p, err := s.providers.ForVault(vault)
	if err != nil {
		return nil, newSyncError(CategoryValidation, op, ErrInvalidVaultConfig, err)
	}

	if !p.IsAvailable(ctx, vault) {
		logger.FromContext(ctx).Warn().Str("provider", string(vault.ProviderType)).Msg("storage provider not available")
		return nil, newSyncError(providerCategory(p), op, ErrProviderNotAvailable, nil)
	}
	return p, nil
}

func (s *syncCoordinator) cancelled(ctx context.Context, op string) error {
	logger.FromContext(ctx).Info().Str("op", op).Msg("sync cancelled")
	return newSyncError(CategorySync, op, ErrSyncCancelled, context.Cause(ctx))
}

func (s *syncCoordinator) report(vaultID string, stage models.SyncStage, done, total int) {
	if s.progress == nil {
		return
	}
	s.progress(models.SyncProgress{VaultID: vaultID, Stage: stage, Done: done, Total: total})
}

// noteOutcome is the result of processing a single note in a sync stage.
type noteOutcome int

const (
	outcomeDone noteOutcome = iota
	outcomeSkipped
	outcomeConflict
	outcomeFailed
	outcomeCancelled
)

func databaseError(op string, err error) error {
	return &SyncError{Category: CategoryDatabase, Op: op, Err: err}
}

func providerCategory(p provider.StorageProvider) ErrorCategory {
	if p.Capabilities().RequiresInternet {
		return CategoryNetwork
	}
	return CategoryFilesystem
}

func addResults(a, b models.SyncResult) models.SyncResult {
	return models.SyncResult{
		Uploaded:   a.Uploaded + b.Uploaded,
		Downloaded: a.Downloaded + b.Downloaded,
		Conflicts:  a.Conflicts + b.Conflicts,
		Errors:     a.Errors + b.Errors,
		Skipped:    a.Skipped + b.Skipped,
	}
}
