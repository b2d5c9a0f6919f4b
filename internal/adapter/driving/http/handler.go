package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vaultpeek/internal/application"
	"vaultpeek/internal/metrics"
)

// Handler is the HTTP driving adapter that serves the diagnostic endpoints.
type Handler struct {
	statusSvc *application.StatusService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(statusSvc *application.StatusService, logger *slog.Logger) *Handler {
	return &Handler{
		statusSvc: statusSvc,
		logger:    logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging, metrics, and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Liveness)
	mux.HandleFunc("GET /config", h.Configuration)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /vault-test", h.VaultTest)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = metricsMiddleware(wrapped)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// Liveness returns the static identity fields plus the current timestamp.
func (h *Handler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toLivenessResponse(h.statusSvc.Liveness()))
}

// Configuration returns the injected configuration summary. It never touches
// the database.
func (h *Handler) Configuration(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toConfigResponse(h.statusSvc.Configuration()))
}

// Health reports the outcome of a single database ping. A ping failure is
// embedded in the body; the endpoint itself always answers 200.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	summary := h.statusSvc.Health(r.Context())
	metrics.DatabasePingsTotal.WithLabelValues(summary.Database).Inc()

	if summary.Database == application.DatabaseDisconnected {
		h.logger.Warn("database ping failed", "error", summary.DatabaseError)
	}

	writeJSON(w, http.StatusOK, toHealthResponse(summary))
}

// VaultTest reports per-value secret provenance and masked previews.
func (h *Handler) VaultTest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toVaultTestResponse(h.statusSvc.VaultTest()))
}
