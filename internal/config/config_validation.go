// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] can be used to
// start the daemon. An empty config is accepted so that callers may build a
// config from a subset of layers.
func (cfg *StructuredConfig) validate() error {
	if strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SyncInterval < 0 || cfg.Workers.MaxConcurrentVaults < 0 || cfg.Workers.WatchDebounce < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// IsPostgres reports whether the DSN points at a PostgreSQL server.
func (db DB) IsPostgres() bool {
	return strings.HasPrefix(db.DSN, "postgres://") || strings.HasPrefix(db.DSN, "postgresql://")
}
