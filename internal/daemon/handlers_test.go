//go:build unix

package daemon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jetscout/jetscout/internal/discover"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	d := &Daemon{logger: zap.NewNop(), startTime: time.Now().UTC()}
	mux := http.NewServeMux()
	d.setupRoutes(mux)
	return mux
}

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testMux(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Status string  `json:"status"`
		Uptime float64 `json:"uptime"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestHandleProjects(t *testing.T) {
	t.Setenv("JETSCOUT_CONFIG_ROOT", t.TempDir())

	rec := httptest.NewRecorder()
	testMux(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var env discover.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, discover.KindSuccess, env.Kind)
	assert.NotEmpty(t, env.Projects, "every catalog product gets a pair")
}

func TestHandleProjects_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	testMux(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/projects", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
