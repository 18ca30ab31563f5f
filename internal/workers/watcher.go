// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	defaultWatchDebounce = 2 * time.Second
	noteFileExt          = ".md"
)

var ErrCreatingWatcher = errors.New("failed to create fsnotify watcher")

// pendingSync is a debounced sync of one vault and the note files changed
// since it was scheduled.
type pendingSync struct {
	timer   *time.Timer
	changed map[string]struct{}
}

// vaultWatcher syncs a file vault after its directory has been quiet for the
// debounce period. Only vaults that pull are watched, since a directory
// change is a remote change from the daemon's point of view.
type vaultWatcher struct {
	vaults      service.VaultService
	coordinator service.SyncCoordinator
	debounce    time.Duration
	logger      *logger.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	dirs    map[string]string // watched directory -> vault id
	pending map[string]*pendingSync
	cancel  context.CancelFunc
	stopped bool

	loop     sync.WaitGroup
	inflight sync.WaitGroup
}

func NewVaultWatcher(vaults service.VaultService, coordinator service.SyncCoordinator, debounce time.Duration, logger *logger.Logger) Worker {
	if debounce <= 0 {
		debounce = defaultWatchDebounce
	}
	return &vaultWatcher{
		vaults:      vaults,
		coordinator: coordinator,
		debounce:    debounce,
		logger:      logger,
	}
}

// Run watches the directories of the configured file vaults. Vaults added
// later are picked up on the next Run.
func (w *vaultWatcher) Run(ctx context.Context) error {
	w.Stop()

	vaults, err := w.vaults.List(ctx)
	if err != nil {
		return fmt.Errorf("list vaults: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreatingWatcher, err)
	}

	dirs := make(map[string]string)
	for _, vault := range vaults {
		if vault.ProviderType != models.ProviderTypeFile || !vault.SyncMode.Pulls() {
			continue
		}

		dir, err := filepath.Abs(vault.Setting(models.VaultSettingPath))
		if err != nil {
			w.logger.Warn().Err(err).Str("vault_id", vault.ID).Msg("invalid vault path, not watching")
			continue
		}
		if err = watcher.Add(dir); err != nil {
			w.logger.Warn().Err(err).Str("vault_id", vault.ID).Str("path", dir).Msg("cannot watch vault directory")
			continue
		}
		dirs[dir] = vault.ID
	}

	runCtx, cancel := context.WithCancel(w.logger.WithContext(ctx))

	w.mu.Lock()
	w.watcher = watcher
	w.dirs = dirs
	w.pending = make(map[string]*pendingSync)
	w.cancel = cancel
	w.stopped = false
	w.loop.Add(1)
	w.mu.Unlock()

	go w.processEvents(runCtx, watcher)

	w.logger.Info().Int("vaults", len(dirs)).Dur("debounce", w.debounce).Msg("vault watcher started")
	return nil
}

func (w *vaultWatcher) processEvents(ctx context.Context, watcher *fsnotify.Watcher) {
	defer w.loop.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if vaultID, ok := w.vaultFor(event); ok {
				w.schedule(ctx, vaultID, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("vault watcher error")
		}
	}
}

// vaultFor maps a note file event to its vault. Hidden files, which include
// the provider's temporary files, and attribute-only changes are ignored.
func (w *vaultWatcher) vaultFor(event fsnotify.Event) (string, bool) {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, noteFileExt) {
		return "", false
	}
	if event.Op == fsnotify.Chmod {
		return "", false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	vaultID, ok := w.dirs[filepath.Dir(event.Name)]
	return vaultID, ok
}

func (w *vaultWatcher) schedule(ctx context.Context, vaultID, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if p, ok := w.pending[vaultID]; ok && p.timer.Stop() {
		p.changed[path] = struct{}{}
		p.timer.Reset(w.debounce)
		return
	}

	p := &pendingSync{changed: map[string]struct{}{path: {}}}
	w.inflight.Add(1)
	p.timer = time.AfterFunc(w.debounce, func() { w.fire(ctx, vaultID, p) })
	w.pending[vaultID] = p
}

func (w *vaultWatcher) fire(ctx context.Context, vaultID string, p *pendingSync) {
	defer w.inflight.Done()

	w.mu.Lock()
	if w.pending[vaultID] == p {
		delete(w.pending, vaultID)
	}
	changed := p.changed
	w.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	log := logger.FromContext(ctx)
	if w.alreadySynced(ctx, vaultID, changed) {
		log.Debug().Str("vault_id", vaultID).Int("files", len(changed)).Msg("vault files match last sync, skipping")
		return
	}

	res, err := w.coordinator.SyncVault(ctx, vaultID)
	switch {
	case errors.Is(err, service.ErrSyncAlreadyRunning):
		log.Debug().Str("vault_id", vaultID).Msg("vault already syncing, change will be picked up later")
	case err != nil:
		log.Err(err).Str("func", "vaultWatcher.fire").Str("vault_id", vaultID).Msg("sync after vault change failed")
	default:
		log.Info().
			Str("vault_id", vaultID).
			Int("downloaded", res.Downloaded).
			Int("conflicts", res.Conflicts).
			Msg("vault synced after change")
	}
}

// alreadySynced reports whether no changed file is newer than the vault
// timestamp recorded for its note. That holds for the files written by the
// daemon's own uploads, which the pull would skip anyway.
func (w *vaultWatcher) alreadySynced(ctx context.Context, vaultID string, changed map[string]struct{}) bool {
	states, err := w.coordinator.ListSyncStates(ctx, vaultID, "")
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("vault_id", vaultID).Msg("error loading sync states for changed files")
		return false
	}

	recorded := make(map[string]time.Time, len(states))
	for _, state := range states {
		if state.RemoteModifiedAt != nil {
			recorded[state.NoteID] = *state.RemoteModifiedAt
		}
	}

	for path := range changed {
		at, ok := recorded[strings.TrimSuffix(filepath.Base(path), noteFileExt)]
		if !ok {
			return false
		}
		info, err := os.Stat(path)
		if err != nil {
			return false
		}
		if models.NormalizeTime(info.ModTime()).After(at) {
			return false
		}
	}
	return true
}

// Stop stops watching, drops debounced syncs that have not started and waits
// for running ones. Safe to call when the watcher is not running.
func (w *vaultWatcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	for id, p := range w.pending {
		if p.timer.Stop() {
			w.inflight.Done()
		}
		delete(w.pending, id)
	}
	cancel, watcher := w.cancel, w.watcher
	w.cancel, w.watcher = nil, nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if watcher != nil {
		if err := watcher.Close(); err != nil {
			w.logger.Warn().Err(err).Msg("error closing vault watcher")
		}
	}

	w.loop.Wait()
	w.inflight.Wait()
}
