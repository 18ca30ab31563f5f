// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
)

// syncRegistry tracks the running vault syncs. At most one sync per vault
// may be registered at a time.
type syncRegistry struct {
	mu     sync.Mutex
	active map[string]*syncEntry
}

type syncEntry struct {
	cancel context.CancelFunc
}

func newSyncRegistry() *syncRegistry {
	return &syncRegistry{active: make(map[string]*syncEntry)}
}

// register records a running sync of vaultID. It returns false without
// registering anything when the vault already has one. The returned release
// func unregisters exactly this entry.
func (r *syncRegistry) register(vaultID string, cancel context.CancelFunc) (func(), bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[vaultID]; ok {
		return nil, false
	}

	entry := &syncEntry{cancel: cancel}
	r.active[vaultID] = entry

	release := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.active[vaultID] == entry {
			delete(r.active, vaultID)
		}
	}
	return release, true
}

// cancel cancels the running sync of vaultID and reports whether there was one.
func (r *syncRegistry) cancel(vaultID string) bool {
	r.mu.Lock()
	entry, ok := r.active[vaultID]
	r.mu.Unlock()

	if !ok {
		return false
	}
	entry.cancel()
	return true
}

func (r *syncRegistry) running(vaultID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[vaultID]
	return ok
}
