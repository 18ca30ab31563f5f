package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// trackNote stores a locally edited note and queues it for upload.
func (h *Handler) trackNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	noteID := chi.URLParam(r, "noteID")

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.trackNote").Msg("error decoding note")
		http.Error(w, ErrInvalidJSON.Error(), statusFromError(ErrInvalidJSON))
		return
	}
	if note.ID == "" {
		note.ID = noteID
	}
	if note.ID != noteID {
		err := fmt.Errorf("%w: %q != %q", ErrIDMismatch, note.ID, noteID)
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err := h.services.SyncCoordinator.TrackLocalChange(r.Context(), note); err != nil {
		log.Err(err).Str("func", "*Handler.trackNote").Str("note_id", noteID).Msg("error tracking local change")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
