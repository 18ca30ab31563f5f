// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

type Services struct {
	SyncCoordinator SyncCoordinator
	RetryService    RetryService
	VaultService    VaultService
	SyncJob         SyncJob
}

func NewServices(storages *store.Storages, providers ProviderFactory, cfg config.Workers, logger *logger.Logger, opts ...CoordinatorOption) *Services {
	retries := NewRetryService(storages.RetryQueue, nil, logger)

	opts = append([]CoordinatorOption{WithMaxConcurrentVaults(cfg.MaxConcurrentVaults)}, opts...)
	coordinator := NewSyncCoordinator(storages, providers, retries, logger, opts...)

	return &Services{
		SyncCoordinator: coordinator,
		RetryService:    retries,
		VaultService:    NewVaultService(storages.Vaults, providers, logger),
		SyncJob:         NewSyncJob(coordinator, retries, logger),
	}
}
