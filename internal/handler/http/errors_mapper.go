package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/provider"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

// errorStatuses is checked in order, so a service sentinel wins over the
// cause it wraps.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrIDMismatch, http.StatusBadRequest},
	{ErrNoSyncRunning, http.StatusNotFound},

	{service.ErrVaultNotFound, http.StatusNotFound},
	{service.ErrNoteNotFound, http.StatusNotFound},
	{service.ErrInvalidVaultConfig, http.StatusBadRequest},
	{service.ErrInvalidNote, http.StatusBadRequest},
	{service.ErrInvalidSyncStatus, http.StatusBadRequest},
	{service.ErrSyncModeExcludesPush, http.StatusConflict},
	{service.ErrSyncAlreadyRunning, http.StatusConflict},
	{service.ErrSyncCancelled, http.StatusConflict},
	{service.ErrManualResolutionRequired, http.StatusConflict},
	{service.ErrProviderNotAvailable, http.StatusServiceUnavailable},
	{service.ErrPushFailed, http.StatusBadGateway},
	{service.ErrPullFailed, http.StatusBadGateway},

	{provider.ErrInvalidVault, http.StatusBadRequest},
	{provider.ErrUnknownProviderType, http.StatusBadRequest},

	{store.ErrVaultNotFound, http.StatusNotFound},
	{store.ErrNoteNotFound, http.StatusNotFound},
	{store.ErrSyncStateNotFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
