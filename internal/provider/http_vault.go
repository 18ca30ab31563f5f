// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	healthPath = "/api/health"
	notesPath  = "/api/notes"
)

// httpVault talks to a remote vault server over its REST API:
//
//	GET  /api/health      availability probe
//	GET  /api/notes       note listing
//	GET  /api/notes/{id}  note download
//	PUT  /api/notes/{id}  note upload
//
// The server address comes from the vault's base_url setting and the optional
// bearer token from its token setting.
type httpVault struct {
	client   *utils.HTTPClient
	validate *validator.Validate
	logger   *logger.Logger
}

// saveNoteResponse is the body returned by PUT /api/notes/{id}.
type saveNoteResponse struct {
	Path string `json:"path"`
}

// NewHTTPVault returns the provider for [models.ProviderTypeHTTP] vaults.
func NewHTTPVault(timeout time.Duration, logger *logger.Logger) StorageProvider {
	return &httpVault{
		client:   utils.NewHTTPClient(timeout),
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *httpVault) ValidateVault(vault models.Vault) error {
	if err := h.validate.Var(vault.Setting(models.VaultSettingBaseURL), "required,http_url"); err != nil {
		return fmt.Errorf("setting %q: %w", models.VaultSettingBaseURL, err)
	}
	return nil
}

func (h *httpVault) IsAvailable(ctx context.Context, vault models.Vault) bool {
	resp, err := h.request(ctx, vault).Get(h.url(vault, healthPath))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "httpVault.IsAvailable").
			Str("vault_id", vault.ID).
			Msg("vault server is unreachable")
		return false
	}
	return mapHTTPError(resp) == nil
}

func (h *httpVault) SaveNote(ctx context.Context, note models.Note, vault models.Vault) (string, error) {
	var result saveNoteResponse

	path := notesPath + "/" + url.PathEscape(note.ID)
	resp, err := h.request(ctx, vault).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&result).
		Put(h.url(vault, path))
	if err != nil {
		return "", fmt.Errorf("save note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpVault.SaveNote").
			Str("vault_id", vault.ID).
			Str("note_id", note.ID).
			Msg("vault server rejected note")
		return "", err
	}

	if result.Path == "" {
		return path, nil
	}
	return result.Path, nil
}

func (h *httpVault) LoadNote(ctx context.Context, noteID string, vault models.Vault) (models.Note, error) {
	var note models.Note

	resp, err := h.request(ctx, vault).
		SetResult(&note).
		Get(h.url(vault, notesPath+"/"+url.PathEscape(noteID)))
	if err != nil {
		return models.Note{}, fmt.Errorf("load note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	note.VaultID = vault.ID
	if note.ID == "" {
		note.ID = noteID
	}
	return note, nil
}

func (h *httpVault) ListNotes(ctx context.Context, vault models.Vault) ([]models.NoteMetadata, error) {
	var notes []models.NoteMetadata

	resp, err := h.request(ctx, vault).
		SetResult(&notes).
		Get(h.url(vault, notesPath))
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpVault.ListNotes").
			Str("vault_id", vault.ID).
			Msg("failed to list vault notes")
		return nil, err
	}

	return notes, nil
}

func (h *httpVault) Capabilities() models.ProviderCapabilities {
	return models.ProviderCapabilities{
		SupportsTags:     true,
		SupportsMetadata: true,
		RequiresInternet: true,
	}
}

func (h *httpVault) request(ctx context.Context, vault models.Vault) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if token := strings.TrimSpace(vault.Setting(models.VaultSettingToken)); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpVault) url(vault models.Vault, path string) string {
	return strings.TrimRight(vault.Setting(models.VaultSettingBaseURL), "/") + path
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNoteNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
