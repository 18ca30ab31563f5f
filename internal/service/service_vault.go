// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type vaultService struct {
	vaults    store.VaultRepository
	providers ProviderFactory
	now       func() time.Time
	logger    *logger.Logger
}

func NewVaultService(vaults store.VaultRepository, providers ProviderFactory, logger *logger.Logger) VaultService {
	return &vaultService{
		vaults:    vaults,
		providers: providers,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *vaultService) List(ctx context.Context) ([]models.Vault, error) {
	vaults, err := s.vaults.List(ctx)
	if err != nil {
		return nil, databaseError("ListVaults", err)
	}
	return vaults, nil
}

func (s *vaultService) Get(ctx context.Context, vaultID string) (models.Vault, error) {
	vault, err := s.vaults.Get(ctx, vaultID)
	if errors.Is(err, store.ErrVaultNotFound) {
		return models.Vault{}, newSyncError(CategoryValidation, "GetVault", ErrVaultNotFound, nil)
	}
	if err != nil {
		return models.Vault{}, databaseError("GetVault", err)
	}
	return vault, nil
}

// Save keeps the creation time and last sync time of an existing vault.
func (s *vaultService) Save(ctx context.Context, vault models.Vault) (models.Vault, error) {
	const op = "SaveVault"
	log := logger.FromContext(ctx)

	if _, err := s.providers.ForVault(vault); err != nil {
		return models.Vault{}, newSyncError(CategoryValidation, op, ErrInvalidVaultConfig, err)
	}

	existing, err := s.vaults.Get(ctx, vault.ID)
	switch {
	case errors.Is(err, store.ErrVaultNotFound):
		vault.CreatedAt = models.NormalizeTime(s.now())
		vault.LastSyncedAt = nil
	case err != nil:
		return models.Vault{}, databaseError(op, err)
	default:
		vault.CreatedAt = existing.CreatedAt
		vault.LastSyncedAt = existing.LastSyncedAt
	}

	if err = s.vaults.Upsert(ctx, vault); err != nil {
		log.Err(err).Str("func", "vaultService.Save").Str("vault_id", vault.ID).Msg("error saving vault")
		return models.Vault{}, databaseError(op, fmt.Errorf("save vault: %w", err))
	}

	log.Info().
		Str("vault_id", vault.ID).
		Str("provider", string(vault.ProviderType)).
		Str("sync_mode", string(vault.SyncMode)).
		Msg("vault saved")
	return vault, nil
}
