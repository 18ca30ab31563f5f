// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

func newTestVaultRepo(t *testing.T) (VaultRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewVaultRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestVaultRepository_Get(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM vaults WHERE id = \$1`).
		WithArgs("v1").
		WillReturnRows(sqlmock.NewRows(vaultColumns).
			AddRow("v1", "Personal", "FILE", `{"path":"/home/me/vault"}`, "BIDIRECTIONAL", "KEEP_BOTH", nil, t0))

	vault, err := repo.Get(testContext(), "v1")
	require.NoError(t, err)
	assert.Equal(t, models.ProviderTypeFile, vault.ProviderType)
	assert.Equal(t, models.SyncModeBidirectional, vault.SyncMode)
	assert.Equal(t, models.ConflictStrategyKeepBoth, vault.ConflictStrategy)
	assert.Equal(t, "/home/me/vault", vault.Setting(models.VaultSettingPath))
	assert.Nil(t, vault.LastSyncedAt)
}

func TestVaultRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM vaults`).WillReturnRows(sqlmock.NewRows(vaultColumns))

	_, err := repo.Get(testContext(), "v1")
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestVaultRepository_List(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectQuery(`^SELECT (.+) FROM vaults ORDER BY created_at, id$`).
		WillReturnRows(sqlmock.NewRows(vaultColumns).
			AddRow("v1", "a", "FILE", `{}`, "PUSH_ONLY", "MANUAL", t0, t0).
			AddRow("v2", "b", "HTTP", `{}`, "DISABLED", "LOCAL_WINS", nil, t0))

	vaults, err := repo.List(testContext())
	require.NoError(t, err)
	require.Len(t, vaults, 2)
	require.NotNil(t, vaults[0].LastSyncedAt)
	assert.True(t, vaults[0].LastSyncedAt.Equal(t0))
}

func TestVaultRepository_UpdateLastSynced(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectExec(`UPDATE vaults SET last_synced_at = \$1 WHERE id = \$2`).
		WithArgs(t0, "v1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE vaults SET last_synced_at = \$1 WHERE id = \$2`).
		WithArgs(t0, "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateLastSynced(testContext(), "v1", t0))
	assert.ErrorIs(t, repo.UpdateLastSynced(testContext(), "gone", t0), ErrVaultNotFound)
}

func TestVaultRepository_Upsert(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	vault := models.Vault{
		ID:               "v1",
		Name:             "Personal",
		ProviderType:     models.ProviderTypeHTTP,
		Settings:         map[string]string{"base_url": "http://vault.local"},
		SyncMode:         models.SyncModePullOnly,
		ConflictStrategy: models.ConflictStrategyRemoteWins,
		CreatedAt:        t0,
	}

	mock.ExpectExec(`INSERT INTO vaults (.+) ON CONFLICT \(id\) DO UPDATE SET`).
		WithArgs("v1", "Personal", "HTTP", `{"base_url":"http://vault.local"}`, "PULL_ONLY", "REMOTE_WINS", nil, t0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(testContext(), vault))
	assert.NoError(t, mock.ExpectationsWereMet())
}
