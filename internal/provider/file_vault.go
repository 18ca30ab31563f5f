// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

const noteFileExt = ".md"

// fileVault stores every note as <vault path>/<note id>.md. The file
// modification time mirrors the note's UpdatedAt.
type fileVault struct {
	validate *validator.Validate
	logger   *logger.Logger
}

// NewFileVault returns the provider for [models.ProviderTypeFile] vaults.
func NewFileVault(logger *logger.Logger) StorageProvider {
	return &fileVault{
		validate: validator.New(),
		logger:   logger,
	}
}

func (f *fileVault) ValidateVault(vault models.Vault) error {
	if err := f.validate.Var(vault.Setting(models.VaultSettingPath), "required"); err != nil {
		return fmt.Errorf("setting %q: %w", models.VaultSettingPath, err)
	}
	return nil
}

func (f *fileVault) IsAvailable(ctx context.Context, vault models.Vault) bool {
	log := logger.FromContext(ctx)

	dir := vault.Setting(models.VaultSettingPath)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Debug().Str("func", "fileVault.IsAvailable").Str("vault_id", vault.ID).Str("path", dir).Msg("vault directory is missing")
		return false
	}

	probe, err := os.CreateTemp(dir, ".notesync-probe-*")
	if err != nil {
		log.Debug().Err(err).Str("func", "fileVault.IsAvailable").Str("vault_id", vault.ID).Msg("vault directory is not writable")
		return false
	}
	probe.Close()
	_ = os.Remove(probe.Name())

	return true
}

func (f *fileVault) SaveNote(ctx context.Context, note models.Note, vault models.Vault) (string, error) {
	log := logger.FromContext(ctx)

	path, err := notePath(vault, note.ID)
	if err != nil {
		return "", err
	}

	data, err := encodeNote(note)
	if err != nil {
		return "", err
	}

	if err = writeFileAtomic(path, data); err != nil {
		log.Err(err).
			Str("func", "fileVault.SaveNote").
			Str("vault_id", vault.ID).
			Str("note_id", note.ID).
			Msg("failed to write note file")
		return "", err
	}

	if !note.UpdatedAt.IsZero() {
		if err = os.Chtimes(path, note.UpdatedAt, note.UpdatedAt); err != nil {
			return "", fmt.Errorf("set note file times: %w", err)
		}
	}

	return path, nil
}

func (f *fileVault) LoadNote(ctx context.Context, noteID string, vault models.Vault) (models.Note, error) {
	path, err := notePath(vault, noteID)
	if err != nil {
		return models.Note{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, noteID)
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("read note file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.Note{}, fmt.Errorf("stat note file: %w", err)
	}

	fm, body, err := decodeNote(data)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "fileVault.LoadNote").
			Str("vault_id", vault.ID).
			Str("path", path).
			Msg("failed to parse note file")
		return models.Note{}, err
	}

	note := models.Note{
		ID:        noteID,
		VaultID:   vault.ID,
		Title:     fm.Title,
		Content:   body,
		Tags:      fm.Tags,
		Metadata:  fm.Metadata,
		CreatedAt: fm.Created,
		UpdatedAt: fm.Updated,
	}

	// edits made outside notesync only bump the file time
	if mtime := info.ModTime(); mtime.After(note.UpdatedAt) {
		note.UpdatedAt = mtime
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = note.UpdatedAt
	}

	return note, nil
}

func (f *fileVault) ListNotes(ctx context.Context, vault models.Vault) ([]models.NoteMetadata, error) {
	log := logger.FromContext(ctx)

	dir := vault.Setting(models.VaultSettingPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Err(err).Str("func", "fileVault.ListNotes").Str("vault_id", vault.ID).Msg("failed to read vault directory")
		return nil, fmt.Errorf("read vault directory: %w", err)
	}

	notes := make([]models.NoteMetadata, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, noteFileExt) || strings.HasPrefix(name, ".") {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			// removed between ReadDir and Info
			continue
		}

		path := filepath.Join(dir, name)
		meta := models.NoteMetadata{
			ID:         strings.TrimSuffix(name, noteFileExt),
			Path:       path,
			ModifiedAt: info.ModTime(),
			Size:       info.Size(),
		}

		if data, readErr := os.ReadFile(path); readErr == nil {
			if fm, _, decodeErr := decodeNote(data); decodeErr == nil {
				meta.Tags = fm.Tags
			} else {
				log.Warn().Err(decodeErr).Str("func", "fileVault.ListNotes").Str("path", path).Msg("skipping tags of malformed note")
			}
		}

		notes = append(notes, meta)
	}

	return notes, nil
}

func (f *fileVault) Capabilities() models.ProviderCapabilities {
	return models.ProviderCapabilities{
		SupportsImages:   true,
		SupportsTags:     true,
		SupportsMetadata: true,
	}
}

// notePath resolves the file of noteID inside the vault directory.
func notePath(vault models.Vault, noteID string) (string, error) {
	dir := vault.Setting(models.VaultSettingPath)
	if dir == "" {
		return "", fmt.Errorf("%w: missing %q setting", ErrInvalidVault, models.VaultSettingPath)
	}
	if noteID == "" || noteID != filepath.Base(noteID) || strings.HasPrefix(noteID, ".") {
		return "", fmt.Errorf("%w: invalid note id %q", ErrMalformedNote, noteID)
	}
	return filepath.Join(dir, noteID+noteFileExt), nil
}

// writeFileAtomic replaces path with data via a temporary file in the same directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create vault directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".notesync-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
