// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// Factory dispatches a vault to the provider registered for its type.
type Factory struct {
	mu        sync.RWMutex
	providers map[models.ProviderType]StorageProvider
	validate  *validator.Validate
}

// NewFactory returns an empty factory. Providers are added with [Factory.Register].
func NewFactory() *Factory {
	return &Factory{
		providers: make(map[models.ProviderType]StorageProvider),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// NewDefaultFactory returns a factory with the bundled file and HTTP providers.
func NewDefaultFactory(cfg config.Server, log *logger.Logger) *Factory {
	f := NewFactory()
	f.Register(models.ProviderTypeFile, NewFileVault(log))
	f.Register(models.ProviderTypeHTTP, NewHTTPVault(cfg.RequestTimeout, log))
	return f
}

// Register binds p to providerType, replacing any previous registration.
func (f *Factory) Register(providerType models.ProviderType, p StorageProvider) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.providers[providerType] = p
}

// ForVault validates vault and returns the provider serving it.
func (f *Factory) ForVault(vault models.Vault) (StorageProvider, error) {
	if err := f.validate.Struct(vault); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVault, err)
	}

	f.mu.RLock()
	p, ok := f.providers[vault.ProviderType]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProviderType, vault.ProviderType)
	}

	if v, ok := p.(vaultValidator); ok {
		if err := v.ValidateVault(vault); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidVault, err)
		}
	}

	return p, nil
}
