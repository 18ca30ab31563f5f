// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRegistry_RegisterTwiceFails(t *testing.T) {
	r := newSyncRegistry()

	release, ok := r.register("v1", func() {})
	require.True(t, ok)
	assert.True(t, r.running("v1"))

	_, ok = r.register("v1", func() {})
	assert.False(t, ok)

	_, ok = r.register("v2", func() {})
	assert.True(t, ok, "other vaults are independent")

	release()
	assert.False(t, r.running("v1"))

	_, ok = r.register("v1", func() {})
	assert.True(t, ok)
}

func TestSyncRegistry_StaleReleaseKeepsNewEntry(t *testing.T) {
	r := newSyncRegistry()

	release, ok := r.register("v1", func() {})
	require.True(t, ok)
	release()

	_, ok = r.register("v1", func() {})
	require.True(t, ok)

	release()
	assert.True(t, r.running("v1"))
}

func TestSyncRegistry_Cancel(t *testing.T) {
	r := newSyncRegistry()
	assert.False(t, r.cancel("v1"))

	ctx, cancel := context.WithCancel(context.Background())
	_, ok := r.register("v1", cancel)
	require.True(t, ok)

	assert.True(t, r.cancel("v1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestSyncRegistry_ConcurrentRegisterAdmitsOne(t *testing.T) {
	r := newSyncRegistry()

	var admitted atomic.Int64
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := r.register("v1", func() {}); ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), admitted.Load())
}
