package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type progress struct {
		VaultID  string `json:"vault_id"`
		Progress int    `json:"progress"`
	}

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{"struct", progress{VaultID: "v1", Progress: 50}, http.StatusOK, `{"vault_id":"v1","progress":50}`},
		{"custom status", map[string]int{"count": 2}, http.StatusAccepted, `{"count":2}`},
		{"nil", nil, http.StatusOK, `null`},
		{"slice", []string{"a", "b"}, http.StatusOK, `["a","b"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
