package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

func (h *Handler) listVaults(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	vaults, err := h.services.VaultService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listVaults").Msg("error listing vaults")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VaultsResponse{Vaults: vaults, Length: len(vaults)}, http.StatusOK)
}

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	vault, err := h.services.VaultService.Get(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVault").Str("vault_id", vaultID).Msg("error getting vault")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, vault, http.StatusOK)
}

// saveVault creates or replaces the vault named in the URL. The body may
// omit the id; when present it must match the URL.
func (h *Handler) saveVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	var vault models.Vault
	if err := json.NewDecoder(r.Body).Decode(&vault); err != nil {
		log.Err(err).Str("func", "*Handler.saveVault").Msg("error decoding vault")
		http.Error(w, ErrInvalidJSON.Error(), statusFromError(ErrInvalidJSON))
		return
	}
	if vault.ID == "" {
		vault.ID = vaultID
	}
	if vault.ID != vaultID {
		err := fmt.Errorf("%w: %q != %q", ErrIDMismatch, vault.ID, vaultID)
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	saved, err := h.services.VaultService.Save(r.Context(), vault)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveVault").Str("vault_id", vaultID).Msg("error saving vault")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) listSyncStates(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")
	status := models.SyncStatus(r.URL.Query().Get("status"))

	states, err := h.services.SyncCoordinator.ListSyncStates(r.Context(), vaultID, status)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listSyncStates").Str("vault_id", vaultID).Msg("error listing sync states")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncStatesResponse{SyncStates: states, Length: len(states)}, http.StatusOK)
}

func (h *Handler) listRetries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	if _, err := h.services.VaultService.Get(r.Context(), vaultID); err != nil {
		log.Err(err).Str("func", "*Handler.listRetries").Str("vault_id", vaultID).Msg("error getting vault")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	items, err := h.services.RetryService.Pending(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRetries").Str("vault_id", vaultID).Msg("error listing retry queue")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.RetryQueueResponse{Items: items, Length: len(items)}, http.StatusOK)
}

func (h *Handler) forgetSynced(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	removed, err := h.services.SyncCoordinator.ForgetSynced(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.forgetSynced").Str("vault_id", vaultID).Msg("error forgetting synced notes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: removed}, http.StatusOK)
}

func (h *Handler) resetErrors(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	reset, err := h.services.SyncCoordinator.ResetErrors(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resetErrors").Str("vault_id", vaultID).Msg("error resetting sync errors")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: reset}, http.StatusOK)
}
