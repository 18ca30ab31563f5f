// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/models"
)

func TestUpsertSuffix(t *testing.T) {
	got := upsertSuffix("id", []string{"id", "title", "content"})
	assert.Equal(t, "ON CONFLICT (id) DO UPDATE SET title = excluded.title, content = excluded.content", got)
}

func TestVaultFilter(t *testing.T) {
	assert.Nil(t, vaultFilter(""))

	query, args, err := psql.Select("note_id").From(tableSyncStates).Where(vaultFilter("v1")).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "vault_id = $1")
	assert.Equal(t, []any{"v1"}, args)

	query, args, err = psql.Select("note_id").
		From(tableSyncStates).
		Where(vaultFilter("", sq.Eq{"status": "SYNCED"})).
		ToSql()
	require.NoError(t, err)
	assert.NotContains(t, query, "vault_id")
	assert.Equal(t, []any{"SYNCED"}, args)
}

func TestBuildSelectSyncStatesQuery(t *testing.T) {
	tests := []struct {
		name       string
		where      sq.Sqlizer
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:  "no filter",
			where: nil,
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.NotContains(t, query, "WHERE")
				assert.Contains(t, query, "FROM sync_states")
				assert.Contains(t, query, "ORDER BY local_modified_at, note_id")
				assert.Empty(t, args)
			},
		},
		{
			name:  "pending upload for a vault",
			where: vaultFilter("v1", pendingUploadPredicate(3)),
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "vault_id = $1")
				require.Contains(t, q, "status = $2")
				require.Contains(t, q, "status = $3")
				require.Contains(t, q, "retry_count < $4")
				require.Contains(t, q, " or ")
				assert.Equal(t, []any{"v1", "PENDING_UPLOAD", "ERROR", 3}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectSyncStatesQuery(tt.where)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildUpsertSyncStateQuery(t *testing.T) {
	local := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.FixedZone("X", 3600))
	state := models.SyncState{
		NoteID:          "n1",
		VaultID:         "v1",
		Status:          models.SyncStatusPendingUpload,
		LocalModifiedAt: local,
	}

	query, args, err := buildUpsertSyncStateQuery(state)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO sync_states"))
	assert.Contains(t, query, "ON CONFLICT (note_id) DO UPDATE SET")
	assert.Contains(t, query, "status = excluded.status")
	assert.NotContains(t, query, "note_id = excluded.note_id")
	require.Len(t, args, len(syncStateColumns))
	assert.Equal(t, "PENDING_UPLOAD", args[2])

	stored, ok := args[3].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.UTC, stored.Location())
	assert.Equal(t, 123456000, stored.Nanosecond())
	assert.Nil(t, args[4])
}

func TestBuildCountByStatusQuery(t *testing.T) {
	query, args, err := buildCountByStatusQuery("v1")
	require.NoError(t, err)
	assert.Equal(t, "SELECT status, COUNT(*) FROM sync_states WHERE (vault_id = $1) GROUP BY status", query)
	assert.Equal(t, []any{"v1"}, args)
}

func TestBuildResetRetryCountsQuery(t *testing.T) {
	query, args, err := buildResetRetryCountsQuery("")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE sync_states SET retry_count = $1 WHERE (status = $2)", query)
	assert.Equal(t, []any{0, "ERROR"}, args)
}

func TestReadyForRetryPredicate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	query, args, err := buildSelectRetryQueueQuery(readyForRetryPredicate(now, models.MaxRetries))
	require.NoError(t, err)
	assert.Contains(t, query, "next_retry_at <= $1")
	assert.Contains(t, query, "retry_count < $2")
	assert.Equal(t, []any{now, models.MaxRetries}, args)
}

func TestBuildUpsertNoteQuery(t *testing.T) {
	note := models.Note{ID: "n1", VaultID: "v1", Title: "t", Content: "c", IsSynced: true}
	query, args, err := buildUpsertNoteQuery(note, `["a"]`, `{}`)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO notes")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET")
	assert.Equal(t, `["a"]`, args[4])
	assert.Equal(t, true, args[8])
}
