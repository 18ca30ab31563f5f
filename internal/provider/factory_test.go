// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

func validVault(pt models.ProviderType, settings map[string]string) models.Vault {
	return models.Vault{
		ID:               "v1",
		ProviderType:     pt,
		Settings:         settings,
		SyncMode:         models.SyncModeBidirectional,
		ConflictStrategy: models.ConflictStrategyManual,
	}
}

func TestFactory_ForVault(t *testing.T) {
	f := NewDefaultFactory(config.Server{}, logger.Nop())

	p, err := f.ForVault(validVault(models.ProviderTypeFile, map[string]string{"path": "/tmp/vault"}))
	require.NoError(t, err)
	assert.IsType(t, &fileVault{}, p)

	p, err = f.ForVault(validVault(models.ProviderTypeHTTP, map[string]string{"base_url": "https://vault.example.com"}))
	require.NoError(t, err)
	assert.IsType(t, &httpVault{}, p)
}

func TestFactory_ForVault_Invalid(t *testing.T) {
	f := NewDefaultFactory(config.Server{}, logger.Nop())

	tests := []struct {
		name  string
		vault models.Vault
		want  error
	}{
		{
			name:  "missing id",
			vault: func() models.Vault { v := validVault(models.ProviderTypeFile, map[string]string{"path": "/x"}); v.ID = ""; return v }(),
			want:  ErrInvalidVault,
		},
		{
			name:  "bad sync mode",
			vault: func() models.Vault { v := validVault(models.ProviderTypeFile, map[string]string{"path": "/x"}); v.SyncMode = "SOMETIMES"; return v }(),
			want:  ErrInvalidVault,
		},
		{
			name:  "unsupported provider type",
			vault: validVault("S3", nil),
			want:  ErrInvalidVault,
		},
		{
			name:  "file vault without path",
			vault: validVault(models.ProviderTypeFile, nil),
			want:  ErrInvalidVault,
		},
		{
			name:  "http vault with bad url",
			vault: validVault(models.ProviderTypeHTTP, map[string]string{"base_url": "not a url"}),
			want:  ErrInvalidVault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ForVault(tt.vault)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFactory_ForVault_Unregistered(t *testing.T) {
	f := NewFactory()

	_, err := f.ForVault(validVault(models.ProviderTypeHTTP, nil))
	assert.ErrorIs(t, err, ErrUnknownProviderType)
}
