package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

func (h *Handler) syncVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	result, err := h.services.SyncCoordinator.SyncVault(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncVault").Str("vault_id", vaultID).Msg("error syncing vault")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VaultSyncResponse{VaultID: vaultID, Result: result}, http.StatusOK)
}

func (h *Handler) forceResync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	result, err := h.services.SyncCoordinator.ForceResync(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.forceResync").Str("vault_id", vaultID).Msg("error resyncing vault")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.VaultSyncResponse{VaultID: vaultID, Result: result}, http.StatusOK)
}

func (h *Handler) cancelSync(w http.ResponseWriter, r *http.Request) {
	vaultID := chi.URLParam(r, "vaultID")

	if !h.services.SyncCoordinator.CancelSync(vaultID) {
		http.Error(w, ErrNoSyncRunning.Error(), statusFromError(ErrNoSyncRunning))
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) pushChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	uploaded, err := h.services.SyncCoordinator.PushChanges(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pushChanges").Str("vault_id", vaultID).Msg("error pushing vault changes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: int64(uploaded)}, http.StatusOK)
}

func (h *Handler) pullChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	downloaded, err := h.services.SyncCoordinator.PullChanges(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullChanges").Str("vault_id", vaultID).Msg("error pulling vault changes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: int64(downloaded)}, http.StatusOK)
}

func (h *Handler) resolveConflicts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	resolved, err := h.services.SyncCoordinator.ResolveConflicts(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resolveConflicts").Str("vault_id", vaultID).Msg("error resolving conflicts")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: int64(resolved)}, http.StatusOK)
}

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	vaultID := chi.URLParam(r, "vaultID")

	progress, err := h.services.SyncCoordinator.GetSyncProgress(r.Context(), vaultID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProgress").Str("vault_id", vaultID).Msg("error getting sync progress")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ProgressResponse{VaultID: vaultID, Progress: progress}, http.StatusOK)
}

func (h *Handler) syncNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, "noteID")

	if err := h.services.SyncCoordinator.SyncNote(r.Context(), noteID); err != nil {
		log.Err(err).Str("func", "*Handler.syncNote").Str("note_id", noteID).Msg("error syncing note")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// syncAll answers 200 even when some vaults failed; the failures are listed
// in the response next to the results of the vaults that synced.
func (h *Handler) syncAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	results, err := h.services.SyncCoordinator.SyncAll(r.Context())
	response := models.SyncAllResponse{Results: results}

	if err != nil {
		if results == nil {
			log.Err(err).Str("func", "*Handler.syncAll").Msg("error syncing vaults")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
		log.Warn().Err(err).Msg("some vaults failed to sync")
		response.Errors = splitErrors(err)
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) retryFailed(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	succeeded, err := h.services.SyncCoordinator.RetryFailed(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.retryFailed").Msg("error retrying failed notes")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: int64(succeeded)}, http.StatusOK)
}

func splitErrors(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}

	errs := joined.Unwrap()
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}
