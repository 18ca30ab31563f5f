package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/provider"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

type testAPI struct {
	coordinator *mock.MockSyncCoordinator
	retries     *mock.MockRetryService
	vaults      *mock.MockVaultService
	router      *chi.Mux
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := &testAPI{
		coordinator: mock.NewMockSyncCoordinator(ctrl),
		retries:     mock.NewMockRetryService(ctrl),
		vaults:      mock.NewMockVaultService(ctrl),
	}
	services := &service.Services{
		SyncCoordinator: api.coordinator,
		RetryService:    api.retries,
		VaultService:    api.vaults,
	}
	api.router = NewHandler(services, "1.2.3", 0, logger.Nop()).Init()
	return api
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func TestGetVersion(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestSyncVault(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().SyncVault(gomock.Any(), "v1").
			Return(models.SyncResult{Uploaded: 2, Downloaded: 1}, nil)

		rr := api.do(http.MethodPost, "/api/vaults/v1/sync", "")

		require.Equal(t, http.StatusOK, rr.Code)
		got := decode[models.VaultSyncResponse](t, rr)
		assert.Equal(t, "v1", got.VaultID)
		assert.Equal(t, 2, got.Result.Uploaded)
		assert.Equal(t, 1, got.Result.Downloaded)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"vault not found", &service.SyncError{Category: service.CategoryValidation, Op: "SyncVault", Err: service.ErrVaultNotFound}, http.StatusNotFound},
		{"already running", service.ErrSyncAlreadyRunning, http.StatusConflict},
		{"cancelled", service.ErrSyncCancelled, http.StatusConflict},
		{"provider unavailable", fmt.Errorf("%w: %w", service.ErrProviderNotAvailable, errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"push failed over store error", fmt.Errorf("%w: %w", service.ErrPushFailed, store.ErrExecutingQuery), http.StatusBadGateway},
		{"store error", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.coordinator.EXPECT().SyncVault(gomock.Any(), "v1").Return(models.SyncResult{}, tt.err)

			rr := api.do(http.MethodPost, "/api/vaults/v1/sync", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.err.Error())
		})
	}
}

func TestCancelSync(t *testing.T) {
	t.Run("running", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().CancelSync("v1").Return(true)

		rr := api.do(http.MethodDelete, "/api/vaults/v1/sync", "")

		assert.Equal(t, http.StatusAccepted, rr.Code)
	})

	t.Run("nothing running", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().CancelSync("v1").Return(false)

		rr := api.do(http.MethodDelete, "/api/vaults/v1/sync", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), ErrNoSyncRunning.Error())
	})
}

func TestForceResync(t *testing.T) {
	api := newTestAPI(t)
	api.coordinator.EXPECT().ForceResync(gomock.Any(), "v1").Return(models.SyncResult{Uploaded: 5}, nil)

	rr := api.do(http.MethodPost, "/api/vaults/v1/resync", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, decode[models.VaultSyncResponse](t, rr).Result.Uploaded)
}

func TestStageEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect func(c *mock.MockSyncCoordinator) *gomock.Call
	}{
		{
			name: "push",
			path: "/api/vaults/v1/push",
			expect: func(c *mock.MockSyncCoordinator) *gomock.Call {
				return c.EXPECT().PushChanges(gomock.Any(), "v1").Return(3, nil)
			},
		},
		{
			name: "pull",
			path: "/api/vaults/v1/pull",
			expect: func(c *mock.MockSyncCoordinator) *gomock.Call {
				return c.EXPECT().PullChanges(gomock.Any(), "v1").Return(3, nil)
			},
		},
		{
			name: "resolve",
			path: "/api/vaults/v1/conflicts/resolve",
			expect: func(c *mock.MockSyncCoordinator) *gomock.Call {
				return c.EXPECT().ResolveConflicts(gomock.Any(), "v1").Return(3, nil)
			},
		},
		{
			name: "retries",
			path: "/api/retries/run",
			expect: func(c *mock.MockSyncCoordinator) *gomock.Call {
				return c.EXPECT().RetryFailed(gomock.Any()).Return(3, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			tt.expect(api.coordinator)

			rr := api.do(http.MethodPost, tt.path, "")

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, int64(3), decode[models.CountResponse](t, rr).Count)
		})
	}
}

func TestResolveConflicts_Manual(t *testing.T) {
	api := newTestAPI(t)
	api.coordinator.EXPECT().ResolveConflicts(gomock.Any(), "v1").
		Return(0, service.ErrManualResolutionRequired)

	rr := api.do(http.MethodPost, "/api/vaults/v1/conflicts/resolve", "")

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestGetProgress(t *testing.T) {
	api := newTestAPI(t)
	api.coordinator.EXPECT().GetSyncProgress(gomock.Any(), "v1").Return(33, nil)

	rr := api.do(http.MethodGet, "/api/vaults/v1/progress", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.ProgressResponse{VaultID: "v1", Progress: 33}, decode[models.ProgressResponse](t, rr))
}

func TestSyncAll(t *testing.T) {
	t.Run("all synced", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().SyncAll(gomock.Any()).Return(map[string]models.SyncResult{
			"v1": {Uploaded: 1},
			"v2": {Downloaded: 2},
		}, nil)

		rr := api.do(http.MethodPost, "/api/sync", "")

		require.Equal(t, http.StatusOK, rr.Code)
		got := decode[models.SyncAllResponse](t, rr)
		assert.Len(t, got.Results, 2)
		assert.Empty(t, got.Errors)
	})

	t.Run("partial failure lists every error", func(t *testing.T) {
		api := newTestAPI(t)
		joined := errors.Join(
			fmt.Errorf("vault v2: %w", service.ErrProviderNotAvailable),
			fmt.Errorf("vault v3: %w", fmt.Errorf("%w: %w", service.ErrPullFailed, errors.New("timeout"))),
		)
		api.coordinator.EXPECT().SyncAll(gomock.Any()).Return(map[string]models.SyncResult{
			"v1": {Uploaded: 1},
			"v2": {},
			"v3": {},
		}, joined)

		rr := api.do(http.MethodPost, "/api/sync", "")

		require.Equal(t, http.StatusOK, rr.Code)
		got := decode[models.SyncAllResponse](t, rr)
		assert.Len(t, got.Results, 3)
		assert.Equal(t, []string{
			"vault v2: storage provider not available",
			"vault v3: pull failed: timeout",
		}, got.Errors)
	})

	t.Run("listing vaults failed", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().SyncAll(gomock.Any()).Return(nil, store.ErrExecutingQuery)

		rr := api.do(http.MethodPost, "/api/sync", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSyncNote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().SyncNote(gomock.Any(), "n1").Return(nil)

		rr := api.do(http.MethodPost, "/api/notes/n1/sync", "")

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("note not found", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().SyncNote(gomock.Any(), "n1").Return(service.ErrNoteNotFound)

		rr := api.do(http.MethodPost, "/api/notes/n1/sync", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("not pushable", func(t *testing.T) {
		for _, err := range []error{service.ErrSyncModeExcludesPush, service.ErrManualResolutionRequired} {
			api := newTestAPI(t)
			api.coordinator.EXPECT().SyncNote(gomock.Any(), "n1").Return(err)

			rr := api.do(http.MethodPost, "/api/notes/n1/sync", "")

			assert.Equal(t, http.StatusConflict, rr.Code, err.Error())
		}
	})
}

func TestTrackNote(t *testing.T) {
	t.Run("id taken from URL", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().TrackLocalChange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, note models.Note) error {
				assert.Equal(t, "n1", note.ID)
				assert.Equal(t, "v1", note.VaultID)
				assert.Equal(t, "hello", note.Content)
				return nil
			})

		rr := api.do(http.MethodPut, "/api/notes/n1", `{"vault_id":"v1","content":"hello"}`)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("id mismatch", func(t *testing.T) {
		api := newTestAPI(t)

		rr := api.do(http.MethodPut, "/api/notes/n1", `{"id":"n2","vault_id":"v1"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), ErrIDMismatch.Error())
	})

	t.Run("invalid JSON", func(t *testing.T) {
		api := newTestAPI(t)

		rr := api.do(http.MethodPut, "/api/notes/n1", `{"id":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), ErrInvalidJSON.Error())
	})

	t.Run("invalid note", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().TrackLocalChange(gomock.Any(), gomock.Any()).Return(service.ErrInvalidNote)

		rr := api.do(http.MethodPut, "/api/notes/n1", `{"content":"no vault"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVaults(t *testing.T) {
	vault := models.Vault{
		ID:               "v1",
		Name:             "Personal",
		ProviderType:     models.ProviderTypeFile,
		Settings:         map[string]string{"path": "/tmp/notes"},
		SyncMode:         models.SyncModeBidirectional,
		ConflictStrategy: models.ConflictStrategyLastWriteWins,
		CreatedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("list", func(t *testing.T) {
		api := newTestAPI(t)
		api.vaults.EXPECT().List(gomock.Any()).Return([]models.Vault{vault}, nil)

		rr := api.do(http.MethodGet, "/api/vaults", "")

		require.Equal(t, http.StatusOK, rr.Code)
		got := decode[models.VaultsResponse](t, rr)
		assert.Equal(t, 1, got.Length)
		assert.Equal(t, "v1", got.Vaults[0].ID)
	})

	t.Run("get", func(t *testing.T) {
		api := newTestAPI(t)
		api.vaults.EXPECT().Get(gomock.Any(), "v1").Return(vault, nil)

		rr := api.do(http.MethodGet, "/api/vaults/v1", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, vault, decode[models.Vault](t, rr))
	})

	t.Run("get missing", func(t *testing.T) {
		api := newTestAPI(t)
		api.vaults.EXPECT().Get(gomock.Any(), "v9").Return(models.Vault{}, fmt.Errorf("%w: %w", service.ErrVaultNotFound, store.ErrVaultNotFound))

		rr := api.do(http.MethodGet, "/api/vaults/v9", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("save", func(t *testing.T) {
		api := newTestAPI(t)
		api.vaults.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, v models.Vault) (models.Vault, error) {
				assert.Equal(t, "v1", v.ID)
				return v, nil
			})

		rr := api.do(http.MethodPut, "/api/vaults/v1",
			`{"name":"Personal","provider_type":"FILE","settings":{"path":"/tmp/notes"},"sync_mode":"BIDIRECTIONAL","conflict_strategy":"LAST_WRITE_WINS"}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Personal", decode[models.Vault](t, rr).Name)
	})

	t.Run("save invalid config", func(t *testing.T) {
		api := newTestAPI(t)
		api.vaults.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(models.Vault{}, fmt.Errorf("%w: %w", service.ErrInvalidVaultConfig, provider.ErrInvalidVault))

		rr := api.do(http.MethodPut, "/api/vaults/v1", `{"provider_type":"FILE"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("save id mismatch", func(t *testing.T) {
		api := newTestAPI(t)

		rr := api.do(http.MethodPut, "/api/vaults/v1", `{"id":"v2"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListSyncStates(t *testing.T) {
	t.Run("filtered by status", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().ListSyncStates(gomock.Any(), "v1", models.SyncStatusConflict).
			Return([]models.SyncState{{NoteID: "n1", VaultID: "v1", Status: models.SyncStatusConflict}}, nil)

		rr := api.do(http.MethodGet, "/api/vaults/v1/states?status=CONFLICT", "")

		require.Equal(t, http.StatusOK, rr.Code)
		got := decode[models.SyncStatesResponse](t, rr)
		assert.Equal(t, 1, got.Length)
		assert.Equal(t, "n1", got.SyncStates[0].NoteID)
	})

	t.Run("unknown status", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().ListSyncStates(gomock.Any(), "v1", models.SyncStatus("BOGUS")).
			Return(nil, service.ErrInvalidSyncStatus)

		rr := api.do(http.MethodGet, "/api/vaults/v1/states?status=BOGUS", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListRetries(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newTestAPI(t)
		gomock.InOrder(
			api.vaults.EXPECT().Get(gomock.Any(), "v1").Return(models.Vault{ID: "v1"}, nil),
			api.retries.EXPECT().Pending(gomock.Any(), "v1").
				Return([]models.RetryQueueItem{{NoteID: "n1", VaultID: "v1", RetryCount: 2}}, nil),
		)

		rr := api.do(http.MethodGet, "/api/vaults/v1/retries", "")

		require.Equal(t, http.StatusOK, rr.Code)
		got := decode[models.RetryQueueResponse](t, rr)
		assert.Equal(t, 1, got.Length)
		assert.Equal(t, 2, got.Items[0].RetryCount)
	})

	t.Run("unknown vault", func(t *testing.T) {
		api := newTestAPI(t)
		api.vaults.EXPECT().Get(gomock.Any(), "v9").Return(models.Vault{}, service.ErrVaultNotFound)

		rr := api.do(http.MethodGet, "/api/vaults/v9/retries", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestMaintenanceEndpoints(t *testing.T) {
	t.Run("forget synced", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().ForgetSynced(gomock.Any(), "v1").Return(int64(4), nil)

		rr := api.do(http.MethodPost, "/api/vaults/v1/forget-synced", "")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(4), decode[models.CountResponse](t, rr).Count)
	})

	t.Run("reset errors", func(t *testing.T) {
		api := newTestAPI(t)
		api.coordinator.EXPECT().ResetErrors(gomock.Any(), "v1").Return(int64(0), store.ErrExecutingStatement)

		rr := api.do(http.MethodPost, "/api/vaults/v1/reset-errors", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestTraceIDHeader(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodGet, "/api/version", "")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr = httptest.NewRecorder()
	api.router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/nothing", "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPatch, "/api/version", "").Code)
}
