// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/models"
)

// psql renders $N placeholders, understood by both pgx and sqlite3.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	tableSyncStates = "sync_states"
	tableRetryQueue = "retry_queue"
	tableNotes      = "notes"
	tableVaults     = "vaults"
)

var (
	syncStateColumns = []string{
		"note_id", "vault_id", "status", "local_modified_at", "remote_modified_at",
		"last_synced_at", "remote_path", "retry_count", "error_message",
	}
	retryQueueColumns = []string{
		"note_id", "vault_id", "retry_count", "last_attempt_at", "next_retry_at",
		"error_message", "created_at",
	}
	noteColumns = []string{
		"id", "vault_id", "title", "content", "tags", "metadata",
		"created_at", "updated_at", "is_synced",
	}
	vaultColumns = []string{
		"id", "name", "provider_type", "settings", "sync_mode", "conflict_strategy",
		"last_synced_at", "created_at",
	}
)

// upsertSuffix builds the ON CONFLICT clause that replaces every non-key column.
func upsertSuffix(key string, columns []string) string {
	sets := make([]string, 0, len(columns)-1)
	for _, c := range columns {
		if c == key {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c, c))
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", key, strings.Join(sets, ", "))
}

// vaultFilter scopes a statement to a vault; an empty id matches every vault.
func vaultFilter(vaultID string, preds ...sq.Sqlizer) sq.Sqlizer {
	and := sq.And{}
	if vaultID != "" {
		and = append(and, sq.Eq{"vault_id": vaultID})
	}
	and = append(and, preds...)
	if len(and) == 0 {
		return nil
	}
	return and
}

// ── sync states ───────────────────────────────────────────────────────────────

func buildSelectSyncStatesQuery(where sq.Sqlizer) (string, []any, error) {
	q := psql.Select(syncStateColumns...).From(tableSyncStates)
	if where != nil {
		q = q.Where(where)
	}
	return q.OrderBy("local_modified_at", "note_id").ToSql()
}

// pendingUploadPredicate selects rows waiting for upload: PENDING_UPLOAD,
// or ERROR with fewer than maxRetries failed pushes.
func pendingUploadPredicate(maxRetries int) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"status": string(models.SyncStatusPendingUpload)},
		sq.And{
			sq.Eq{"status": string(models.SyncStatusError)},
			sq.Lt{"retry_count": maxRetries},
		},
	}
}

func buildUpsertSyncStateQuery(s models.SyncState) (string, []any, error) {
	return psql.Insert(tableSyncStates).
		Columns(syncStateColumns...).
		Values(
			s.NoteID,
			s.VaultID,
			string(s.Status),
			dbTime(s.LocalModifiedAt),
			dbTimePtr(s.RemoteModifiedAt),
			dbTimePtr(s.LastSyncedAt),
			s.RemotePath,
			s.RetryCount,
			s.ErrorMessage,
		).
		Suffix(upsertSuffix("note_id", syncStateColumns)).
		ToSql()
}

func buildCountByStatusQuery(vaultID string) (string, []any, error) {
	q := psql.Select("status", "COUNT(*)").From(tableSyncStates)
	if where := vaultFilter(vaultID); where != nil {
		q = q.Where(where)
	}
	return q.GroupBy("status").ToSql()
}

func buildDeleteSyncStatesQuery(where sq.Sqlizer) (string, []any, error) {
	q := psql.Delete(tableSyncStates)
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

func buildResetRetryCountsQuery(vaultID string) (string, []any, error) {
	return psql.Update(tableSyncStates).
		Set("retry_count", 0).
		Where(vaultFilter(vaultID, sq.Eq{"status": string(models.SyncStatusError)})).
		ToSql()
}

// ── retry queue ───────────────────────────────────────────────────────────────

func buildSelectRetryQueueQuery(where sq.Sqlizer) (string, []any, error) {
	q := psql.Select(retryQueueColumns...).From(tableRetryQueue)
	if where != nil {
		q = q.Where(where)
	}
	return q.OrderBy("next_retry_at", "note_id").ToSql()
}

func readyForRetryPredicate(now time.Time, maxRetries int) sq.Sqlizer {
	return sq.And{
		sq.LtOrEq{"next_retry_at": dbTime(now)},
		sq.Lt{"retry_count": maxRetries},
	}
}

func buildUpsertRetryQueueQuery(item models.RetryQueueItem) (string, []any, error) {
	return psql.Insert(tableRetryQueue).
		Columns(retryQueueColumns...).
		Values(
			item.NoteID,
			item.VaultID,
			item.RetryCount,
			dbTime(item.LastAttemptAt),
			dbTime(item.NextRetryAt),
			item.ErrorMessage,
			dbTime(item.CreatedAt),
		).
		Suffix(upsertSuffix("note_id", retryQueueColumns)).
		ToSql()
}

func buildDeleteRetryQueueQuery(where sq.Sqlizer) (string, []any, error) {
	q := psql.Delete(tableRetryQueue)
	if where != nil {
		q = q.Where(where)
	}
	return q.ToSql()
}

// ── notes ─────────────────────────────────────────────────────────────────────

func buildSelectNotesQuery(where sq.Sqlizer) (string, []any, error) {
	return psql.Select(noteColumns...).
		From(tableNotes).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
}

func buildUpsertNoteQuery(n models.Note, tags, metadata string) (string, []any, error) {
	return psql.Insert(tableNotes).
		Columns(noteColumns...).
		Values(
			n.ID,
			n.VaultID,
			n.Title,
			n.Content,
			tags,
			metadata,
			dbTime(n.CreatedAt),
			dbTime(n.UpdatedAt),
			n.IsSynced,
		).
		Suffix(upsertSuffix("id", noteColumns)).
		ToSql()
}

// ── vaults ────────────────────────────────────────────────────────────────────

func buildSelectVaultsQuery(where sq.Sqlizer) (string, []any, error) {
	q := psql.Select(vaultColumns...).From(tableVaults)
	if where != nil {
		q = q.Where(where)
	}
	return q.OrderBy("created_at", "id").ToSql()
}

func buildUpsertVaultQuery(v models.Vault, settings string) (string, []any, error) {
	return psql.Insert(tableVaults).
		Columns(vaultColumns...).
		Values(
			v.ID,
			v.Name,
			string(v.ProviderType),
			settings,
			string(v.SyncMode),
			string(v.ConflictStrategy),
			dbTimePtr(v.LastSyncedAt),
			dbTime(v.CreatedAt),
		).
		Suffix(upsertSuffix("id", vaultColumns)).
		ToSql()
}
