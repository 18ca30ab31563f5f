// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// StorageProvider reads and writes notes against one kind of vault backend.
// Implementations are stateless with respect to vaults: every call carries
// the vault configuration it applies to.
type StorageProvider interface {
	// IsAvailable reports whether the vault can currently be read and written.
	IsAvailable(ctx context.Context, vault models.Vault) bool
	// SaveNote writes note into the vault and returns its provider-specific path.
	SaveNote(ctx context.Context, note models.Note, vault models.Vault) (string, error)
	// LoadNote reads a note from the vault or returns [ErrNoteNotFound].
	LoadNote(ctx context.Context, noteID string, vault models.Vault) (models.Note, error)
	// ListNotes returns the metadata of every note in the vault.
	ListNotes(ctx context.Context, vault models.Vault) ([]models.NoteMetadata, error)
	Capabilities() models.ProviderCapabilities
}

// vaultValidator is implemented by providers that require specific vault settings.
type vaultValidator interface {
	ValidateVault(vault models.Vault) error
}
