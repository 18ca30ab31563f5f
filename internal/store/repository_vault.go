// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// vaultRepository is the SQL implementation of [VaultRepository]. Provider
// settings are stored as a JSON document.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vaultRepository) Get(ctx context.Context, vaultID string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultsQuery(sq.Eq{"id": vaultID})
	if err != nil {
		return models.Vault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	vault, err := scanVault(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vault{}, ErrVaultNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Get").
			Str("vault_id", vaultID).
			Msg("failed to scan vault row")
		return models.Vault{}, err
	}

	return vault, nil
}

func (r *vaultRepository) List(ctx context.Context) ([]models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultsQuery(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "vaultRepository.List").Msg("failed to execute query for vaults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vaults := make([]models.Vault, 0, 4)
	for rows.Next() {
		vault, scanErr := scanVault(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "vaultRepository.List").Msg("failed to scan vault row")
			return nil, scanErr
		}
		vaults = append(vaults, vault)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vaults, nil
}

func (r *vaultRepository) Upsert(ctx context.Context, vault models.Vault) error {
	log := logger.FromContext(ctx)

	settings, err := encodeJSONColumn(vault.Settings, "{}")
	if err != nil {
		return err
	}

	query, args, err := buildUpsertVaultQuery(vault, settings)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Upsert").
			Str("vault_id", vault.ID).
			Msg("failed to upsert vault")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *vaultRepository) UpdateLastSynced(ctx context.Context, vaultID string, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update(tableVaults).
		Set("last_synced_at", dbTime(at)).
		Where(sq.Eq{"id": vaultID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.UpdateLastSynced").
			Str("vault_id", vaultID).
			Msg("failed to update vault")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVaultNotFound
	}

	return nil
}

func scanVault(row rowScanner) (models.Vault, error) {
	var (
		vault        models.Vault
		providerType string
		settings     string
		syncMode     string
		strategy     string
	)
	err := row.Scan(
		&vault.ID,
		&vault.Name,
		&providerType,
		&settings,
		&syncMode,
		&strategy,
		&vault.LastSyncedAt,
		&vault.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vault{}, err
		}
		return models.Vault{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	vault.ProviderType = models.ProviderType(providerType)
	vault.SyncMode = models.SyncMode(syncMode)
	vault.ConflictStrategy = models.ConflictStrategy(strategy)

	if err = decodeJSONColumn(settings, &vault.Settings); err != nil {
		return models.Vault{}, err
	}

	return vault, nil
}
