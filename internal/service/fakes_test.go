// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/provider"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// In-memory repositories mirroring the ordering and not-found behaviour of
// the SQL implementations.

type fakeSyncStates struct {
	mu     sync.Mutex
	rows   map[string]models.SyncState
	failOn map[string]error
}

func newFakeSyncStates() *fakeSyncStates {
	return &fakeSyncStates{rows: make(map[string]models.SyncState), failOn: make(map[string]error)}
}

func (f *fakeSyncStates) put(states ...models.SyncState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range states {
		f.rows[s.NoteID] = s
	}
}

func (f *fakeSyncStates) get(noteID string) (models.SyncState, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.rows[noteID]
	return s, ok
}

func (f *fakeSyncStates) filter(pred func(models.SyncState) bool) []models.SyncState {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.SyncState
	for _, s := range f.rows {
		if pred(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LocalModifiedAt.Equal(out[j].LocalModifiedAt) {
			return out[i].LocalModifiedAt.Before(out[j].LocalModifiedAt)
		}
		return out[i].NoteID < out[j].NoteID
	})
	return out
}

func (f *fakeSyncStates) fail(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failOn[op]
}

func (f *fakeSyncStates) Get(_ context.Context, noteID string) (models.SyncState, error) {
	if err := f.fail("Get"); err != nil {
		return models.SyncState{}, err
	}
	s, ok := f.get(noteID)
	if !ok {
		return models.SyncState{}, store.ErrSyncStateNotFound
	}
	return s, nil
}

func (f *fakeSyncStates) ListByVault(_ context.Context, vaultID string) ([]models.SyncState, error) {
	return f.filter(func(s models.SyncState) bool { return s.VaultID == vaultID }), nil
}

func (f *fakeSyncStates) ListByStatus(_ context.Context, status models.SyncStatus) ([]models.SyncState, error) {
	return f.filter(func(s models.SyncState) bool { return s.Status == status }), nil
}

func (f *fakeSyncStates) ListByVaultAndStatus(_ context.Context, vaultID string, status models.SyncStatus) ([]models.SyncState, error) {
	return f.filter(func(s models.SyncState) bool { return s.VaultID == vaultID && s.Status == status }), nil
}

func (f *fakeSyncStates) ListPendingUpload(_ context.Context, vaultID string, maxRetries int) ([]models.SyncState, error) {
	if err := f.fail("ListPendingUpload"); err != nil {
		return nil, err
	}
	return f.filter(func(s models.SyncState) bool {
		return s.VaultID == vaultID &&
			(s.Status == models.SyncStatusPendingUpload ||
				(s.Status == models.SyncStatusError && s.RetryCount < maxRetries))
	}), nil
}

func (f *fakeSyncStates) ListPendingDownload(_ context.Context, vaultID string) ([]models.SyncState, error) {
	return f.filter(func(s models.SyncState) bool {
		return s.VaultID == vaultID && s.Status == models.SyncStatusPendingDownload
	}), nil
}

func (f *fakeSyncStates) ListConflicts(_ context.Context, vaultID string) ([]models.SyncState, error) {
	return f.filter(func(s models.SyncState) bool {
		return s.VaultID == vaultID && s.Status == models.SyncStatusConflict
	}), nil
}

func (f *fakeSyncStates) CountByStatus(_ context.Context, vaultID string) (models.StatusCounts, error) {
	if err := f.fail("CountByStatus"); err != nil {
		return nil, err
	}
	counts := models.StatusCounts{}
	for _, s := range f.filter(func(s models.SyncState) bool { return s.VaultID == vaultID }) {
		counts[s.Status]++
	}
	return counts, nil
}

func (f *fakeSyncStates) Upsert(_ context.Context, states ...models.SyncState) error {
	if err := f.fail("Upsert"); err != nil {
		return err
	}
	f.put(states...)
	return nil
}

func (f *fakeSyncStates) Delete(_ context.Context, noteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, noteID)
	return nil
}

func (f *fakeSyncStates) deleteWhere(pred func(models.SyncState) bool) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, s := range f.rows {
		if pred(s) {
			delete(f.rows, id)
			n++
		}
	}
	return n
}

func (f *fakeSyncStates) DeleteByVault(_ context.Context, vaultID string) (int64, error) {
	return f.deleteWhere(func(s models.SyncState) bool { return s.VaultID == vaultID }), nil
}

func (f *fakeSyncStates) DeleteSynced(_ context.Context, vaultID string) (int64, error) {
	return f.deleteWhere(func(s models.SyncState) bool {
		return s.Status == models.SyncStatusSynced && (vaultID == "" || s.VaultID == vaultID)
	}), nil
}

func (f *fakeSyncStates) ResetRetryCounts(_ context.Context, vaultID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, s := range f.rows {
		if s.Status == models.SyncStatusError && (vaultID == "" || s.VaultID == vaultID) {
			s.RetryCount = 0
			f.rows[id] = s
			n++
		}
	}
	return n, nil
}

type fakeNotes struct {
	mu   sync.Mutex
	rows map[string]models.Note
}

func newFakeNotes() *fakeNotes {
	return &fakeNotes{rows: make(map[string]models.Note)}
}

func (f *fakeNotes) put(notes ...models.Note) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range notes {
		f.rows[n.ID] = n
	}
}

func (f *fakeNotes) get(id string) (models.Note, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.rows[id]
	return n, ok
}

func (f *fakeNotes) Get(_ context.Context, noteID string) (models.Note, error) {
	n, ok := f.get(noteID)
	if !ok {
		return models.Note{}, store.ErrNoteNotFound
	}
	return n, nil
}

func (f *fakeNotes) ListByVault(_ context.Context, vaultID string) ([]models.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Note
	for _, n := range f.rows {
		if n.VaultID == vaultID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeNotes) Upsert(_ context.Context, note models.Note) error {
	f.put(note)
	return nil
}

func (f *fakeNotes) Delete(_ context.Context, noteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, noteID)
	return nil
}

func (f *fakeNotes) MarkSynced(_ context.Context, noteID string, synced bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.rows[noteID]
	if !ok {
		return store.ErrNoteNotFound
	}
	n.IsSynced = synced
	f.rows[noteID] = n
	return nil
}

type fakeVaults struct {
	mu   sync.Mutex
	rows map[string]models.Vault
}

func newFakeVaults() *fakeVaults {
	return &fakeVaults{rows: make(map[string]models.Vault)}
}

func (f *fakeVaults) put(vaults ...models.Vault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range vaults {
		f.rows[v.ID] = v
	}
}

func (f *fakeVaults) Get(_ context.Context, vaultID string) (models.Vault, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.rows[vaultID]
	if !ok {
		return models.Vault{}, store.ErrVaultNotFound
	}
	return v, nil
}

func (f *fakeVaults) List(_ context.Context) ([]models.Vault, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Vault, 0, len(f.rows))
	for _, v := range f.rows {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeVaults) Upsert(_ context.Context, vault models.Vault) error {
	f.put(vault)
	return nil
}

func (f *fakeVaults) UpdateLastSynced(_ context.Context, vaultID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.rows[vaultID]
	if !ok {
		return store.ErrVaultNotFound
	}
	v.LastSyncedAt = &at
	f.rows[vaultID] = v
	return nil
}

type fakeRetryQueue struct {
	mu   sync.Mutex
	rows map[string]models.RetryQueueItem
}

func newFakeRetryQueue() *fakeRetryQueue {
	return &fakeRetryQueue{rows: make(map[string]models.RetryQueueItem)}
}

func (f *fakeRetryQueue) get(noteID string) (models.RetryQueueItem, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.rows[noteID]
	return item, ok
}

func (f *fakeRetryQueue) filter(pred func(models.RetryQueueItem) bool) []models.RetryQueueItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.RetryQueueItem
	for _, item := range f.rows {
		if pred(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].NextRetryAt.Equal(out[j].NextRetryAt) {
			return out[i].NextRetryAt.Before(out[j].NextRetryAt)
		}
		return out[i].NoteID < out[j].NoteID
	})
	return out
}

func (f *fakeRetryQueue) Get(_ context.Context, noteID string) (models.RetryQueueItem, error) {
	item, ok := f.get(noteID)
	if !ok {
		return models.RetryQueueItem{}, store.ErrRetryItemNotFound
	}
	return item, nil
}

func (f *fakeRetryQueue) ListAll(_ context.Context) ([]models.RetryQueueItem, error) {
	return f.filter(func(models.RetryQueueItem) bool { return true }), nil
}

func (f *fakeRetryQueue) ListReady(_ context.Context, now time.Time, maxRetries int) ([]models.RetryQueueItem, error) {
	return f.filter(func(i models.RetryQueueItem) bool {
		return !i.NextRetryAt.After(now) && i.RetryCount < maxRetries
	}), nil
}

func (f *fakeRetryQueue) ListByVault(_ context.Context, vaultID string) ([]models.RetryQueueItem, error) {
	return f.filter(func(i models.RetryQueueItem) bool { return i.VaultID == vaultID }), nil
}

func (f *fakeRetryQueue) ListExceeded(_ context.Context, maxRetries int) ([]models.RetryQueueItem, error) {
	return f.filter(func(i models.RetryQueueItem) bool { return i.RetryCount >= maxRetries }), nil
}

func (f *fakeRetryQueue) Upsert(_ context.Context, item models.RetryQueueItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[item.NoteID] = item
	return nil
}

func (f *fakeRetryQueue) Remove(_ context.Context, noteID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, noteID)
	return nil
}

func (f *fakeRetryQueue) RemoveExceeded(_ context.Context, maxRetries int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, item := range f.rows {
		if item.RetryCount >= maxRetries {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeRetryQueue) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = make(map[string]models.RetryQueueItem)
	return nil
}

// memVault is an in-memory storage provider. Notes are stored as saved; the
// listing reports each note's UpdatedAt as its modification time.
type memVault struct {
	mu        sync.Mutex
	notes     map[string]models.Note
	available bool
	saveErr   map[string]error
	loadErr   map[string]error
	saves     []string
	beforeOp  func()
}

func newMemVault() *memVault {
	return &memVault{
		notes:     make(map[string]models.Note),
		available: true,
		saveErr:   make(map[string]error),
		loadErr:   make(map[string]error),
	}
}

func (v *memVault) put(notes ...models.Note) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, n := range notes {
		v.notes[n.ID] = n
	}
}

func (v *memVault) get(id string) (models.Note, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	n, ok := v.notes[id]
	return n, ok
}

func (v *memVault) hook() {
	if v.beforeOp != nil {
		v.beforeOp()
	}
}

func (v *memVault) IsAvailable(context.Context, models.Vault) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.available
}

func (v *memVault) SaveNote(ctx context.Context, note models.Note, _ models.Vault) (string, error) {
	v.hook()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.saveErr[note.ID]; err != nil {
		return "", err
	}
	v.notes[note.ID] = note
	v.saves = append(v.saves, note.ID)
	return "mem/" + note.ID + ".md", nil
}

func (v *memVault) LoadNote(ctx context.Context, noteID string, _ models.Vault) (models.Note, error) {
	v.hook()
	if err := ctx.Err(); err != nil {
		return models.Note{}, err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.loadErr[noteID]; err != nil {
		return models.Note{}, err
	}
	n, ok := v.notes[noteID]
	if !ok {
		return models.Note{}, provider.ErrNoteNotFound
	}
	return n, nil
}

func (v *memVault) ListNotes(_ context.Context, _ models.Vault) ([]models.NoteMetadata, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.NoteMetadata, 0, len(v.notes))
	for _, n := range v.notes {
		out = append(out, models.NoteMetadata{
			ID:         n.ID,
			Path:       "mem/" + n.ID + ".md",
			ModifiedAt: n.UpdatedAt,
			Size:       int64(len(n.Content)),
			Tags:       n.Tags,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (v *memVault) Capabilities() models.ProviderCapabilities {
	return models.ProviderCapabilities{SupportsTags: true, SupportsMetadata: true}
}

func (v *memVault) savedIDs() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.saves...)
}

// staticFactory serves every vault with the same provider.
type staticFactory struct {
	p   provider.StorageProvider
	err error
}

func (f staticFactory) ForVault(models.Vault) (provider.StorageProvider, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.p, nil
}

var errBoom = errors.New("boom")

// sequentialIDs returns an id generator producing copy-1, copy-2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("copy-%d", n)
	}
}
