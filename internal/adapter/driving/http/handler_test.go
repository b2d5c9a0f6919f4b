package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "vaultpeek/internal/adapter/driving/http"
	"vaultpeek/internal/application"
	"vaultpeek/internal/domain/model"
)

// mockPinger implements driven.DatabasePinger for handler tests.
type mockPinger struct {
	url string
	err error
}

func (m *mockPinger) Ping(_ context.Context) (string, error) {
	return m.url, m.err
}

var injectedSnap = model.Snapshot{
	ExternalAPIKey:     "dev-api-key-12345",
	JWTSecret:          "dev-jwt-secret-abcdef",
	DatasourceURL:      "vaultpeek.db",
	DatasourceUsername: "devuser",
}

// defaultSnap mirrors a startup with no secret bindings injected.
var defaultSnap = model.Snapshot{
	ExternalAPIKey:     model.DefaultExternalAPIKey,
	JWTSecret:          "",
	DatasourceURL:      "vaultpeek.db",
	DatasourceUsername: "default",
}

func setupMux(snap model.Snapshot, pinger *mockPinger) http.Handler {
	svc := application.NewStatusService("vaultpeek", snap, pinger)
	h := httphandler.NewHandler(svc, slog.Default())
	return httphandler.NewServeMux(h, slog.Default())
}

// doGet performs a GET against the mux and decodes the JSON body into a map.
func doGet(t *testing.T, mux http.Handler, path string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestLiveness(t *testing.T) {
	mux := setupMux(defaultSnap, &mockPinger{})

	status, body := doGet(t, mux, "/")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "vaultpeek", body["application"])
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "enabled", body["vault-integration"])
	assert.Positive(t, body["timestamp"])
}

func TestLiveness_RootPatternIsExact(t *testing.T) {
	mux := setupMux(defaultSnap, &mockPinger{})

	req := httptest.NewRequest(http.MethodGet, "/no-such-path", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfiguration_Defaults(t *testing.T) {
	mux := setupMux(defaultSnap, &mockPinger{})

	status, body := doGet(t, mux, "/config")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "default-key", body["external-api-key"])
	assert.Equal(t, false, body["jwt-secret-configured"])
	assert.Equal(t, "vaultpeek.db", body["database-url"])
	assert.Equal(t, "default", body["database-username"])
}

func TestConfiguration_Injected(t *testing.T) {
	mux := setupMux(injectedSnap, &mockPinger{})

	_, body := doGet(t, mux, "/config")

	assert.Equal(t, "dev-api-key-12345", body["external-api-key"])
	assert.Equal(t, true, body["jwt-secret-configured"])
	assert.Equal(t, "devuser", body["database-username"])
}

func TestHealth_Connected(t *testing.T) {
	mux := setupMux(injectedSnap, &mockPinger{url: "file:vaultpeek.db"})

	status, body := doGet(t, mux, "/health")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "file:vaultpeek.db", body["database-url"])
	assert.NotContains(t, body, "database-error")
	assert.Equal(t, "configured", body["vault-secrets"])
	assert.Equal(t, "healthy", body["status"])
}

func TestHealth_DisconnectedStillReturns200(t *testing.T) {
	mux := setupMux(defaultSnap, &mockPinger{err: errors.New("connection refused")})

	status, body := doGet(t, mux, "/health")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "disconnected", body["database"])
	assert.Equal(t, "connection refused", body["database-error"])
	assert.NotContains(t, body, "database-url")
	assert.Equal(t, "using-defaults", body["vault-secrets"])
	// Database failure does not change the reported overall status.
	assert.Equal(t, "healthy", body["status"])
}

func TestVaultTest_Injected(t *testing.T) {
	mux := setupMux(injectedSnap, &mockPinger{})

	status, body := doGet(t, mux, "/vault-test")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "vault", body["external-api-key-source"])
	assert.Equal(t, "vault", body["jwt-secret-source"])
	assert.Equal(t, "vault", body["database-user-source"])
	assert.Equal(t, "dev***345", body["external-api-key-masked"])
	assert.Equal(t, "dev***def", body["jwt-secret-masked"])
}

func TestVaultTest_Defaults(t *testing.T) {
	mux := setupMux(defaultSnap, &mockPinger{})

	_, body := doGet(t, mux, "/vault-test")

	assert.Equal(t, "default", body["external-api-key-source"])
	assert.Equal(t, "default", body["jwt-secret-source"])
	assert.Equal(t, "default", body["database-user-source"])
}

func TestMetricsEndpoint(t *testing.T) {
	mux := setupMux(defaultSnap, &mockPinger{})

	// Serve one request first so the counters have something to report.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	mux.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vaultpeek_http_requests_total")
}

func TestMethodNotAllowed(t *testing.T) {
	mux := setupMux(defaultSnap, &mockPinger{})

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
