package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	h, _ := newTestHandlers(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status      string  `json:"status"`
		Timestamp   string  `json:"timestamp"`
		Uptime      float64 `json:"uptime"`
		Environment string  `json:"environment"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "test", body.Environment)
	assert.GreaterOrEqual(t, body.Uptime, 0.0)

	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err, "timestamp is ISO-8601")
}
